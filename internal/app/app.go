package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ekaraca/blog-admin/config"
	"github.com/ekaraca/blog-admin/internal/blogadmin"
	"github.com/ekaraca/blog-admin/internal/db"
	"github.com/ekaraca/blog-admin/internal/media"
	"github.com/ekaraca/blog-admin/internal/rest"
	"github.com/ekaraca/blog-admin/internal/rpc"
	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"
)

const defaultUploadFolder = "blog_uploads"

type App struct {
	DB     *db.Repository
	Logger *slog.Logger
	Echo   *echo.Echo
	Config config.Config
}

func New(cfg config.Config, dbConnect *pg.DB, logger *slog.Logger) *App {
	database := db.New(dbConnect)

	uploader := media.NewCloudinaryClient(media.Config{
		CloudName:    cfg.Media.CloudName,
		UploadPreset: cfg.Media.UploadPreset,
	})

	folder := cfg.Media.Folder
	if folder == "" {
		folder = defaultUploadFolder
	}

	manager := blogadmin.NewBlogManager(database, uploader, folder)
	handler := rest.NewBlogHandler(manager, logger)
	e := handler.RegisterRoutes()

	rpcServer := rpc.New(logger, manager)
	e.Any("/v1/rpc", echo.WrapHandler(rpcServer))

	return &App{
		DB:     database,
		Logger: logger,
		Echo:   e,
		Config: cfg,
	}
}

func (a *App) Run(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	return a.Echo.Start(addr)
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
