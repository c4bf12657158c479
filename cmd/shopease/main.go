package main

import (
	"context"
	"fmt"
	"os"

	"github.com/shopease/backend/internal/adapter/auth"
	"github.com/shopease/backend/internal/adapter/config"
	"github.com/shopease/backend/internal/adapter/handler/http"
	"github.com/shopease/backend/internal/adapter/logger"
	"github.com/shopease/backend/internal/adapter/storage"
	"github.com/shopease/backend/internal/adapter/storage/repository"
	"github.com/shopease/backend/internal/core/service"
	"go.uber.org/zap"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	if log == nil {
		fmt.Printf("error creating log")
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx := context.Background()

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		log.Error("database error", zap.Error(err))
		return
	}
	err = db.RunMigrations()
	if err != nil {
		log.Error("database migration error", zap.Error(err))
		return
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		log.Error("repository creating error", zap.Error(err))
		return
	}
	tokenService, err := auth.New(conf.Auth)
	if err != nil {
		log.Error("token service creating error", zap.Error(err))
		return
	}

	svc, err := service.NewService(repo, tokenService, log.Named("Service"))
	if err != nil {
		log.Error("service creating error", zap.Error(err))
		return
	}

	if err := os.MkdirAll(conf.Uploads.Dir, 0o755); err != nil {
		log.Error("upload dir creating error", zap.Error(err))
		return
	}

	userHandler, err := http.NewUserHandler(svc, log.Named("User handler"))
	if err != nil {
		log.Error("user handler creating error", zap.Error(err))
		return
	}
	productHandler, err := http.NewProductHandler(svc, log.Named("Product handler"))
	if err != nil {
		log.Error("product handler creating error", zap.Error(err))
		return
	}
	orderHandler, err := http.NewOrderHandler(svc, log.Named("Order handler"))
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}
	cartHandler, err := http.NewCartHandler(svc, log.Named("Cart handler"))
	if err != nil {
		log.Error("cart handler creating error", zap.Error(err))
		return
	}
	contactHandler, err := http.NewContactHandler(svc, log.Named("Contact handler"))
	if err != nil {
		log.Error("contact handler creating error", zap.Error(err))
		return
	}
	adminHandler, err := http.NewAdminHandler(svc, log.Named("Admin handler"))
	if err != nil {
		log.Error("admin handler creating error", zap.Error(err))
		return
	}
	uploadHandler, err := http.NewUploadHandler(conf.Uploads.Dir, log.Named("Upload handler"))
	if err != nil {
		log.Error("upload handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.HTTP, conf.Uploads, tokenService,
		userHandler, productHandler, orderHandler, cartHandler,
		contactHandler, adminHandler, uploadHandler)
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	err = r.Serve(conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
}
