package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/devaqn/projeto-pet-shop/internal/domain/cadastro"
	"github.com/devaqn/projeto-pet-shop/internal/dto"
	"github.com/devaqn/projeto-pet-shop/internal/httperr"
	"github.com/devaqn/projeto-pet-shop/internal/httpresp"
	"github.com/devaqn/projeto-pet-shop/internal/logger"
	"github.com/devaqn/projeto-pet-shop/internal/usecase/cadastro"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type CadastroHandler struct {
	createUC *cadastro.CreateCadastro
	listUC   *cadastro.ListCadastros
}

func NewCadastroHandler(
	createUC *cadastro.CreateCadastro,
	listUC *cadastro.ListCadastros,
) *CadastroHandler {
	return &CadastroHandler{
		createUC: createUC,
		listUC:   listUC,
	}
}

////////////////////////////////////////////////////////
// CREATE
////////////////////////////////////////////////////////

func (h *CadastroHandler) Create(c *gin.Context) {
	var req dto.CadastroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Requisição inválida.")
		return
	}

	dono, err := h.createUC.Execute(c.Request.Context(), cadastro.CreateCadastroInput{
		NomeCompleto: req.Dono.NomeCompleto,
		CPF:          req.Dono.CPF,
		Email:        req.Dono.Email,
		Telefone:     req.Dono.Telefone,
		Endereco:     req.Dono.Endereco,

		NomePet:        req.Pet.NomePet,
		Especie:        req.Pet.Especie,
		Raca:           req.Pet.Raca,
		DataNascimento: req.Pet.DataNascimento,
		Observacoes:    req.Pet.Observacoes,
	})

	if err != nil {
		switch {
		case httperr.IsBusiness(err, domain.CodeCamposDono):
			httperr.BadRequest(c, "Todos os campos do dono são obrigatórios!")

		case httperr.IsBusiness(err, domain.CodeCamposPet):
			httperr.BadRequest(c, "Todos os campos do pet são obrigatórios (exceto observações)!")

		case httperr.IsBusiness(err, domain.CodeCPFDuplicado):
			httperr.BadRequest(c, "CPF já cadastrado no sistema!")

		default:
			// detalhe fica no log do servidor, nunca no corpo da resposta
			logger.Log.Error("erro ao cadastrar", zap.Error(err))
			httperr.Internal(c, "Erro ao processar cadastro.")
		}
		return
	}

	httpresp.OK(c, dto.CadastroResponse{
		Success: true,
		Message: "Cliente e pet cadastrados com sucesso!",
		DonoID:  dono.ID,
	})
}

////////////////////////////////////////////////////////
// LIST
////////////////////////////////////////////////////////

func (h *CadastroHandler) List(c *gin.Context) {
	rows, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		logger.Log.Error("erro ao buscar cadastros", zap.Error(err))
		httperr.Internal(c, "Erro ao buscar cadastros")
		return
	}

	httpresp.List(c, rows)
}
