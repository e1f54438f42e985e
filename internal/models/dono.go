package models

// Dono de pet, cadastrado uma única vez; CPF é único no sistema
type Dono struct {
	ID uint `gorm:"primaryKey" json:"id"`

	NomeCompleto string `gorm:"column:nome_completo;not null" json:"nome_completo"`
	CPF          string `gorm:"column:cpf;uniqueIndex;not null" json:"cpf"`
	Email        string `gorm:"column:email;not null" json:"email"`
	Telefone     string `gorm:"column:telefone;not null" json:"telefone"`
	Endereco     string `gorm:"column:endereco;not null" json:"endereco"`
}

func (Dono) TableName() string {
	return "dono"
}
