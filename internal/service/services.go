package service

import (
	"go.uber.org/zap"

	"github.com/mael/portfolio-showcase/internal/config"
	"github.com/mael/portfolio-showcase/internal/repository"
)

type Services struct {
	Auth    *AuthService
	Project *ProjectService
	Catalog *CatalogService
}

func NewServices(repos *repository.Repositories, cfg *config.Config, log *zap.Logger) (*Services, error) {
	auth := NewAuthService(repos.User, repos.Session, cfg, log)
	project, err := NewProjectService(repos.Project, repos.User, log)
	if err != nil {
		return nil, err
	}
	catalog := NewCatalogService(auth, project, repos.User, log)
	return &Services{
		Auth:    auth,
		Project: project,
		Catalog: catalog,
	}, nil
}
