package cadastro

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/devaqn/projeto-pet-shop/internal/domain/cadastro"
	"github.com/devaqn/projeto-pet-shop/internal/dto"
	"github.com/devaqn/projeto-pet-shop/internal/httperr"
	"github.com/devaqn/projeto-pet-shop/internal/models"
)

// fakeRepo guarda cadastros em memória e conta as chamadas.
type fakeRepo struct {
	donos        []models.Dono
	animais      []models.Animal
	createCalls  int
	existsCalls  int
	createErr    error
	nextDonoID   uint
	nextAnimalID uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{nextDonoID: 1, nextAnimalID: 1}
}

func (f *fakeRepo) CPFExists(_ context.Context, cpf string) (bool, error) {
	f.existsCalls++
	for _, d := range f.donos {
		if d.CPF == cpf {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) CreateCadastro(_ context.Context, dono *models.Dono, animal *models.Animal) error {
	f.createCalls++
	if f.createErr != nil {
		return f.createErr
	}
	dono.ID = f.nextDonoID
	f.nextDonoID++
	animal.IDDono = dono.ID
	animal.ID = f.nextAnimalID
	f.nextAnimalID++
	f.donos = append(f.donos, *dono)
	f.animais = append(f.animais, *animal)
	return nil
}

func (f *fakeRepo) ListCadastros(_ context.Context) ([]dto.CadastroListDTO, error) {
	return nil, nil
}

func validInput() CreateCadastroInput {
	return CreateCadastroInput{
		NomeCompleto: "Maria Silva",
		CPF:          "11144477735",
		Email:        "maria@exemplo.com",
		Telefone:     "(11) 91234-5678",
		Endereco:     "Rua das Flores, 123",

		NomePet:        "Rex",
		Especie:        "Cachorro",
		Raca:           "Vira-lata",
		DataNascimento: "2020-05-10",
		Observacoes:    "Alérgico a frango",
	}
}

func TestCreateCadastro_Sucesso(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateCadastro(repo)

	dono, err := uc.Execute(context.Background(), validInput())

	require.NoError(t, err)
	assert.Equal(t, uint(1), dono.ID)
	assert.Len(t, repo.donos, 1)
	assert.Len(t, repo.animais, 1)
	assert.Equal(t, dono.ID, repo.animais[0].IDDono)
	require.NotNil(t, repo.animais[0].Observacoes)
	assert.Equal(t, "Alérgico a frango", *repo.animais[0].Observacoes)
}

func TestCreateCadastro_ObservacoesOpcional(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateCadastro(repo)

	in := validInput()
	in.Observacoes = ""

	_, err := uc.Execute(context.Background(), in)

	require.NoError(t, err)
	assert.Nil(t, repo.animais[0].Observacoes)
}

func TestCreateCadastro_CamposDonoObrigatorios(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateCadastro(repo)

	in := validInput()
	in.Endereco = ""

	_, err := uc.Execute(context.Background(), in)

	assert.True(t, httperr.IsBusiness(err, domain.CodeCamposDono))
	// falha antes de qualquer acesso ao repositório
	assert.Zero(t, repo.existsCalls)
	assert.Zero(t, repo.createCalls)
}

func TestCreateCadastro_CamposPetObrigatorios(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateCadastro(repo)

	in := validInput()
	in.Raca = ""

	_, err := uc.Execute(context.Background(), in)

	assert.True(t, httperr.IsBusiness(err, domain.CodeCamposPet))
	assert.Zero(t, repo.createCalls)
	assert.Empty(t, repo.donos)
}

func TestCreateCadastro_OrdemDeValidacao(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateCadastro(repo)

	// dono e pet incompletos: a falha do dono vence
	in := validInput()
	in.NomeCompleto = ""
	in.Raca = ""

	_, err := uc.Execute(context.Background(), in)

	assert.True(t, httperr.IsBusiness(err, domain.CodeCamposDono))
}

func TestCreateCadastro_CPFDuplicado(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateCadastro(repo)

	_, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)

	in := validInput()
	in.NomePet = "Totó"

	_, err = uc.Execute(context.Background(), in)

	assert.True(t, httperr.IsBusiness(err, domain.CodeCPFDuplicado))
	assert.Len(t, repo.donos, 1)
}

func TestCreateCadastro_ConflitoNaInsercao(t *testing.T) {
	// corrida: o CPF passa na checagem mas o índice único barra o insert
	repo := newFakeRepo()
	repo.createErr = httperr.ErrBusiness(domain.CodeCPFDuplicado)
	uc := NewCreateCadastro(repo)

	_, err := uc.Execute(context.Background(), validInput())

	assert.True(t, httperr.IsBusiness(err, domain.CodeCPFDuplicado))
}
