package service

import (
	"github.com/MKhiriev/go-blog-keeper/internal/config"
	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/store"
)

type Services struct {
	AuthService AuthService
	BlogService BlogService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, cfg, logger),
		BlogService: NewBlogService(storages.BlogRepository, storages.UserRepository, logger),
	}
}
