package catalog

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/andrehsilva/novomundodastintas/internal/domain"
	"github.com/andrehsilva/novomundodastintas/internal/dto"
	"github.com/andrehsilva/novomundodastintas/internal/service/catalogservice"
	"github.com/andrehsilva/novomundodastintas/pkg/utils"
	"github.com/go-chi/chi/v5"
)

const maxImageSize = 10 << 20

type Service interface {
	GetCatalog(ctx context.Context, categoria string, ordem string) (*catalogservice.Catalog, error)
	CreateProduct(ctx context.Context, nome, descricao string, valorPontos int, categoria, filename string, image []byte) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int) error
}

type CatalogHandler struct {
	catalogService Service
}

func New(catalogService Service) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// GetCatalog godoc
//
//	@Summary		Browse the redeemable product catalog
//	@Description	Public catalog listing filtered by categoria and ordered by valor_pontos (ordem=asc|desc).
//	@Tags			Catálogo
//	@Produce		json
//	@Param			categoria	query		string	false	"Category filter"
//	@Param			ordem		query		string	false	"Price ordering, asc or desc"
//	@Success		200			{object}	dto.CatalogResponseDTO
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/catalogo [get]
func (h *CatalogHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	categoria := r.URL.Query().Get("categoria")
	ordem := r.URL.Query().Get("ordem")

	catalog, err := h.catalogService.GetCatalog(r.Context(), categoria, ordem)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	produtos := make([]dto.ProductResponseDTO, len(catalog.Produtos))
	for i, p := range catalog.Produtos {
		produtos[i] = dto.ProductResponseDTO{
			ID:          p.ID,
			Nome:        p.Nome,
			Descricao:   p.Descricao,
			ValorPontos: p.ValorPontos,
			ImagemURL:   p.ImagemURL,
			Categoria:   p.Categoria,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CatalogResponseDTO{
		Produtos:   produtos,
		Categorias: catalog.Categorias,
	})
}

// CreateProduct godoc
//
//	@Summary		Register a new redeemable product
//	@Description	Multipart form: nome, descricao, valor_pontos, categoria and an imagem file. The image goes to the object store; its public URL is persisted.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			nome			formData	string	true	"Product name"
//	@Param			descricao		formData	string	true	"Description"
//	@Param			valor_pontos	formData	int		true	"Price in points"
//	@Param			categoria		formData	string	true	"Category"
//	@Param			imagem			formData	file	true	"Product image (png, jpg, jpeg, gif)"
//	@Success		200				{object}	dto.ProductResponseDTO
//	@Failure		400				{object}	utils.Response	"Invalid form data"
//	@Failure		401				{object}	utils.Response	"User not authorized"
//	@Failure		500				{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/produtos [post]
func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid form data")
		return
	}

	valorPontos, err := strconv.Atoi(r.FormValue("valor_pontos"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid valor_pontos")
		return
	}

	file, header, err := r.FormFile("imagem")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "imagem file is required")
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "can't read imagem file")
		return
	}

	product, err := h.catalogService.CreateProduct(
		r.Context(),
		r.FormValue("nome"),
		r.FormValue("descricao"),
		valorPontos,
		r.FormValue("categoria"),
		header.Filename,
		image,
	)
	if err != nil {
		switch {
		case errors.Is(err, catalogservice.ErrInvalidPrice), errors.Is(err, catalogservice.ErrInvalidImage):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ProductResponseDTO{
		ID:          product.ID,
		Nome:        product.Nome,
		Descricao:   product.Descricao,
		ValorPontos: product.ValorPontos,
		ImagemURL:   product.ImagemURL,
		Categoria:   product.Categoria,
	})
}

// DeleteProduct godoc
//
//	@Summary		Remove a product from the catalog
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Product ID"
//	@Success		200	{object}	utils.Response
//	@Failure		400	{object}	utils.Response	"Invalid product id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Product not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/produtos/{id} [delete]
func (h *CatalogHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	if err := h.catalogService.DeleteProduct(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, catalogservice.ErrProductNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Produto removido do catálogo."})
}
