package dto

type ProductResponseDTO struct {
	ID          int    `json:"id" example:"1"`
	Nome        string `json:"nome" example:"Kit Pintura Premium"`
	Descricao   string `json:"descricao" example:"Profissional completo."`
	ValorPontos int    `json:"valor_pontos" example:"3500"`
	ImagemURL   string `json:"imagem_url"`
	Categoria   string `json:"categoria" example:"Ferramenta"`
}

type CatalogResponseDTO struct {
	Produtos   []ProductResponseDTO `json:"produtos"`
	Categorias []string             `json:"categorias"`
}
