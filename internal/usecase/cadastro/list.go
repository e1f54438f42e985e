package cadastro

import (
	"context"

	domain "github.com/devaqn/projeto-pet-shop/internal/domain/cadastro"
	"github.com/devaqn/projeto-pet-shop/internal/dto"
)

type ListCadastros struct {
	repo domain.Repository
}

func NewListCadastros(repo domain.Repository) *ListCadastros {
	return &ListCadastros{repo: repo}
}

// Execute devolve todos os cadastros (dono LEFT JOIN animal),
// do mais recente para o mais antigo.
func (uc *ListCadastros) Execute(ctx context.Context) ([]dto.CadastroListDTO, error) {
	return uc.repo.ListCadastros(ctx)
}
