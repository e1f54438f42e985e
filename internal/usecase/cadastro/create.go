package cadastro

import (
	"context"

	domain "github.com/devaqn/projeto-pet-shop/internal/domain/cadastro"
	"github.com/devaqn/projeto-pet-shop/internal/httperr"
	"github.com/devaqn/projeto-pet-shop/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateCadastroInput struct {
	NomeCompleto string
	CPF          string
	Email        string
	Telefone     string
	Endereco     string

	NomePet        string
	Especie        string
	Raca           string
	DataNascimento string
	Observacoes    string
}

// ======================================================
// USE CASE
// ======================================================

type CreateCadastro struct {
	repo domain.Repository
}

func NewCreateCadastro(repo domain.Repository) *CreateCadastro {
	return &CreateCadastro{repo: repo}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateCadastro) Execute(
	ctx context.Context,
	in CreateCadastroInput,
) (*models.Dono, error) {

	// --------------------------------------------------
	// 1️⃣ Campos obrigatórios do dono
	// --------------------------------------------------
	if in.NomeCompleto == "" || in.CPF == "" || in.Email == "" ||
		in.Telefone == "" || in.Endereco == "" {
		return nil, httperr.ErrBusiness(domain.CodeCamposDono)
	}

	// --------------------------------------------------
	// 2️⃣ Campos obrigatórios do pet (observações é opcional)
	// --------------------------------------------------
	if in.NomePet == "" || in.Especie == "" || in.Raca == "" ||
		in.DataNascimento == "" {
		return nil, httperr.ErrBusiness(domain.CodeCamposPet)
	}

	// --------------------------------------------------
	// 3️⃣ CPF único
	// --------------------------------------------------
	exists, err := uc.repo.CPFExists(ctx, in.CPF)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, httperr.ErrBusiness(domain.CodeCPFDuplicado)
	}

	// --------------------------------------------------
	// 4️⃣ Insere dono + animal na mesma transação
	// --------------------------------------------------
	dono := models.Dono{
		NomeCompleto: in.NomeCompleto,
		CPF:          in.CPF,
		Email:        in.Email,
		Telefone:     in.Telefone,
		Endereco:     in.Endereco,
	}

	animal := models.Animal{
		NomePet:        in.NomePet,
		Especie:        in.Especie,
		Raca:           in.Raca,
		DataNascimento: in.DataNascimento,
	}
	if in.Observacoes != "" {
		animal.Observacoes = &in.Observacoes
	}

	if err := uc.repo.CreateCadastro(ctx, &dono, &animal); err != nil {
		return nil, err
	}

	return &dono, nil
}
