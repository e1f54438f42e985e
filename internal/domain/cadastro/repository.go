package cadastro

import (
	"context"

	"github.com/devaqn/projeto-pet-shop/internal/dto"
	"github.com/devaqn/projeto-pet-shop/internal/models"
)

type Repository interface {
	// -------- Dono --------
	CPFExists(
		ctx context.Context,
		cpf string,
	) (bool, error)

	// -------- Cadastro (dono + animal, atômico) --------
	CreateCadastro(
		ctx context.Context,
		dono *models.Dono,
		animal *models.Animal,
	) error

	// -------- Listagem --------
	ListCadastros(
		ctx context.Context,
	) ([]dto.CadastroListDTO, error)
}
