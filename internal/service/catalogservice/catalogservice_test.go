package catalogservice

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/andrehsilva/novomundodastintas/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockUploader) {
	ctrl := gomock.NewController(t)
	productRepo := NewMockRepo(ctrl)
	uploader := NewMockUploader(ctrl)

	service := New(productRepo, uploader)
	defer ctrl.Finish()
	return service, productRepo, uploader
}

func TestGetCatalog(t *testing.T) {
	tests := []struct {
		name          string
		prepareMock   func(productRepo *MockRepo)
		expectedError error
	}{
		{
			name: "Returns products and categories",
			prepareMock: func(productRepo *MockRepo) {
				productRepo.EXPECT().List(gomock.Any(), "ferramentas", "asc").Return([]domain.Product{
					{ID: 1, Nome: "Kit Rolos", ValorPontos: 1500, Categoria: "ferramentas"},
				}, nil)
				productRepo.EXPECT().Categories(gomock.Any()).Return([]string{"ferramentas", "epi"}, nil)
			},
			expectedError: nil,
		},
		{
			name: "List error",
			prepareMock: func(productRepo *MockRepo) {
				productRepo.EXPECT().List(gomock.Any(), "ferramentas", "asc").Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
		{
			name: "Categories error",
			prepareMock: func(productRepo *MockRepo) {
				productRepo.EXPECT().List(gomock.Any(), "ferramentas", "asc").Return(nil, nil)
				productRepo.EXPECT().Categories(gomock.Any()).Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, productRepo, _ := NewMock(t)
			tt.prepareMock(productRepo)

			catalog, err := service.GetCatalog(context.Background(), "ferramentas", "asc")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Nil(t, catalog)
			} else {
				assert.NoError(t, err)
				assert.Len(t, catalog.Produtos, 1)
				assert.Equal(t, []string{"ferramentas", "epi"}, catalog.Categorias)
			}
		})
	}
}

func TestGetProduct(t *testing.T) {
	service, productRepo, _ := NewMock(t)

	productRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Product{ID: 1, Nome: "Kit Rolos"}, nil)
	product, err := service.GetProduct(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, "Kit Rolos", product.Nome)

	productRepo.EXPECT().FindByID(gomock.Any(), 99).Return(nil, nil)
	product, err = service.GetProduct(context.Background(), 99)
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.Nil(t, product)
}

func TestCreateProduct(t *testing.T) {
	image := []byte("fake-png-bytes")

	tests := []struct {
		name          string
		valorPontos   int
		filename      string
		image         []byte
		prepareMock   func(productRepo *MockRepo, uploader *MockUploader)
		expectedError error
	}{
		{
			name:        "Successful creation",
			valorPontos: 1500,
			filename:    "pistola.PNG",
			image:       image,
			prepareMock: func(productRepo *MockRepo, uploader *MockUploader) {
				uploader.EXPECT().Upload(gomock.Any(), gomock.Any(), image, "image/png").DoAndReturn(
					func(ctx context.Context, path string, data []byte, contentType string) (string, error) {
						assert.True(t, strings.HasPrefix(path, "public/"))
						assert.True(t, strings.HasSuffix(path, ".png"))
						return "https://storage.example.com/" + path, nil
					})
				productRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, product *domain.Product) (*domain.Product, error) {
					assert.Equal(t, 1500, product.ValorPontos)
					assert.NotEmpty(t, product.ImagemURL)
					product.ID = 1
					return product, nil
				})
			},
			expectedError: nil,
		},
		{
			name:          "Non-positive price is rejected",
			valorPontos:   0,
			filename:      "pistola.png",
			image:         image,
			prepareMock:   func(productRepo *MockRepo, uploader *MockUploader) {},
			expectedError: ErrInvalidPrice,
		},
		{
			name:          "Unsupported extension is rejected",
			valorPontos:   1500,
			filename:      "pistola.pdf",
			image:         image,
			prepareMock:   func(productRepo *MockRepo, uploader *MockUploader) {},
			expectedError: ErrInvalidImage,
		},
		{
			name:          "Empty image is rejected",
			valorPontos:   1500,
			filename:      "pistola.png",
			image:         nil,
			prepareMock:   func(productRepo *MockRepo, uploader *MockUploader) {},
			expectedError: ErrInvalidImage,
		},
		{
			name:        "Upload failure aborts creation",
			valorPontos: 1500,
			filename:    "pistola.png",
			image:       image,
			prepareMock: func(productRepo *MockRepo, uploader *MockUploader) {
				uploader.EXPECT().Upload(gomock.Any(), gomock.Any(), image, "image/png").Return("", errors.New("storage unavailable"))
			},
			expectedError: errors.New("storage unavailable"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, productRepo, uploader := NewMock(t)
			tt.prepareMock(productRepo, uploader)

			product, err := service.CreateProduct(context.Background(), "Pistola de Pintura", "Pistola HVLP", tt.valorPontos, "ferramentas", tt.filename, tt.image)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, product)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "Pistola de Pintura", product.Nome)
			}
		})
	}
}

func TestDeleteProduct(t *testing.T) {
	service, productRepo, _ := NewMock(t)

	productRepo.EXPECT().Delete(gomock.Any(), 1).Return(true, nil)
	assert.NoError(t, service.DeleteProduct(context.Background(), 1))

	productRepo.EXPECT().Delete(gomock.Any(), 99).Return(false, nil)
	assert.ErrorIs(t, service.DeleteProduct(context.Background(), 99), ErrProductNotFound)
}
