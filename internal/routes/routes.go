package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/devaqn/projeto-pet-shop/internal/config"
	"github.com/devaqn/projeto-pet-shop/internal/handlers"
	infraRepo "github.com/devaqn/projeto-pet-shop/internal/infra/repository"
	ucCadastro "github.com/devaqn/projeto-pet-shop/internal/usecase/cadastro"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	cadastroRepo := infraRepo.NewCadastroGormRepository(db)

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	createCadastroUC := ucCadastro.NewCreateCadastro(cadastroRepo)
	listCadastrosUC := ucCadastro.NewListCadastros(cadastroRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	cadastroHandler := handlers.NewCadastroHandler(
		createCadastroUC,
		listCadastrosUC,
	)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/cadastro", cadastroHandler.Create)
		api.GET("/cadastros", cadastroHandler.List)
	}

	// ======================================================
	// 🌍 ARQUIVOS ESTÁTICOS (formulário)
	// ======================================================
	fs := http.FileServer(http.Dir(cfg.StaticDir))
	r.NoRoute(gin.WrapH(fs))
}
