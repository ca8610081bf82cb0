package catalogservice

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/andrehsilva/novomundodastintas/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repo interface {
	FindByID(ctx context.Context, id int) (*domain.Product, error)
	List(ctx context.Context, categoria string, ordem string) ([]domain.Product, error)
	Categories(ctx context.Context) ([]string, error)
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id int) (bool, error)
}

// Uploader is the object store: takes bytes and a path, returns a public URL.
type Uploader interface {
	Upload(ctx context.Context, path string, data []byte, contentType string) (string, error)
}

type Service struct {
	productRepo Repo
	uploader    Uploader
}

func New(productRepo Repo, uploader Uploader) *Service {
	return &Service{
		productRepo: productRepo,
		uploader:    uploader,
	}
}

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidPrice    = errors.New("valor_pontos must be positive")
	ErrInvalidImage    = errors.New("invalid image file")
)

var imageContentTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
}

type Catalog struct {
	Produtos   []domain.Product
	Categorias []string
}

func (s *Service) GetCatalog(ctx context.Context, categoria string, ordem string) (*Catalog, error) {
	produtos, err := s.productRepo.List(ctx, categoria, ordem)
	if err != nil {
		zap.L().Error("failed to list products", zap.Error(err))
		return nil, err
	}
	categorias, err := s.productRepo.Categories(ctx)
	if err != nil {
		zap.L().Error("failed to list categories", zap.Error(err))
		return nil, err
	}
	return &Catalog{Produtos: produtos, Categorias: categorias}, nil
}

func (s *Service) GetProduct(ctx context.Context, id int) (*domain.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// CreateProduct uploads the image to the object store and persists the
// catalog entry with the returned public URL.
func (s *Service) CreateProduct(ctx context.Context, nome, descricao string, valorPontos int, categoria, filename string, image []byte) (*domain.Product, error) {
	if valorPontos <= 0 {
		return nil, ErrInvalidPrice
	}
	ext := strings.ToLower(filepath.Ext(filename))
	contentType, ok := imageContentTypes[ext]
	if !ok || len(image) == 0 {
		return nil, ErrInvalidImage
	}

	objectPath := "public/" + uuid.NewString() + ext
	imagemURL, err := s.uploader.Upload(ctx, objectPath, image, contentType)
	if err != nil {
		zap.L().Error("can't upload product image", zap.Error(err))
		return nil, err
	}

	product := &domain.Product{
		Nome:        nome,
		Descricao:   descricao,
		ValorPontos: valorPontos,
		ImagemURL:   imagemURL,
		Categoria:   categoria,
	}
	if _, err := s.productRepo.Create(ctx, product); err != nil {
		zap.L().Error("can't save product: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("product created", zap.String("nome", nome), zap.Int("valorPontos", valorPontos))
	return product, nil
}

func (s *Service) DeleteProduct(ctx context.Context, id int) error {
	deleted, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrProductNotFound
	}
	zap.L().Info("product deleted", zap.Int("productID", id))
	return nil
}
