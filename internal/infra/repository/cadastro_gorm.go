package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/devaqn/projeto-pet-shop/internal/domain/cadastro"
	"github.com/devaqn/projeto-pet-shop/internal/dto"
	"github.com/devaqn/projeto-pet-shop/internal/httperr"
	"github.com/devaqn/projeto-pet-shop/internal/models"
)

type CadastroGormRepository struct {
	db *gorm.DB
}

func NewCadastroGormRepository(db *gorm.DB) *CadastroGormRepository {
	return &CadastroGormRepository{db: db}
}

// --------------------------------------------------
// Dono
// --------------------------------------------------

func (r *CadastroGormRepository) CPFExists(
	ctx context.Context,
	cpf string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Dono{}).
		Where("cpf = ?", cpf).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// --------------------------------------------------
// Cadastro (dono + animal)
// --------------------------------------------------

// CreateCadastro insere dono e animal na mesma transação:
// ou os dois persistem, ou nenhum. Uma corrida de CPF duplicado
// esbarra no índice único e vira erro de negócio.
func (r *CadastroGormRepository) CreateCadastro(
	ctx context.Context,
	dono *models.Dono,
	animal *models.Animal,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.Create(dono).Error; err != nil {
			return err
		}

		animal.IDDono = dono.ID
		if err := tx.Create(animal).Error; err != nil {
			return err
		}

		return nil
	})

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return httperr.ErrBusinessCause(domain.CodeCPFDuplicado, err)
	}

	return err
}

// --------------------------------------------------
// Listagem
// --------------------------------------------------

func (r *CadastroGormRepository) ListCadastros(
	ctx context.Context,
) ([]dto.CadastroListDTO, error) {

	var rows []dto.CadastroListDTO
	if err := r.db.WithContext(ctx).
		Table("dono d").
		Select(`
			d.id AS dono_id,
			d.nome_completo,
			d.cpf,
			d.email,
			d.telefone,
			d.endereco,
			a.id AS animal_id,
			a.nome_pet,
			a.especie,
			a.raca,
			a.data_nascimento,
			a.observacoes
		`).
		Joins("LEFT JOIN animal a ON d.id = a.id_dono").
		Order("d.id DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}
