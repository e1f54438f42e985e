package dto

type DonoDTO struct {
	NomeCompleto string `json:"nome_completo"`
	CPF          string `json:"cpf"`
	Email        string `json:"email"`
	Telefone     string `json:"telefone"`
	Endereco     string `json:"endereco"`
}

type PetDTO struct {
	NomePet        string `json:"nome_pet"`
	Especie        string `json:"especie"`
	Raca           string `json:"raca"`
	DataNascimento string `json:"data_nascimento"`
	Observacoes    string `json:"observacoes"`
}

type CadastroRequest struct {
	Dono DonoDTO `json:"dono"`
	Pet  PetDTO  `json:"pet"`
}

type CadastroResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	DonoID  uint   `json:"donoId"`
}

// CadastroListDTO é uma linha do LEFT JOIN dono/animal;
// campos do animal ficam nulos para dono sem pet.
type CadastroListDTO struct {
	DonoID       uint   `gorm:"column:dono_id" json:"dono_id"`
	NomeCompleto string `gorm:"column:nome_completo" json:"nome_completo"`
	CPF          string `gorm:"column:cpf" json:"cpf"`
	Email        string `gorm:"column:email" json:"email"`
	Telefone     string `gorm:"column:telefone" json:"telefone"`
	Endereco     string `gorm:"column:endereco" json:"endereco"`

	AnimalID       *uint   `gorm:"column:animal_id" json:"animal_id"`
	NomePet        *string `gorm:"column:nome_pet" json:"nome_pet"`
	Especie        *string `gorm:"column:especie" json:"especie"`
	Raca           *string `gorm:"column:raca" json:"raca"`
	DataNascimento *string `gorm:"column:data_nascimento" json:"data_nascimento"`
	Observacoes    *string `gorm:"column:observacoes" json:"observacoes"`
}
