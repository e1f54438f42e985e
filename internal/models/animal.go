package models

type Animal struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	IDDono uint `gorm:"column:id_dono;not null" json:"id_dono"`

	NomePet        string  `gorm:"column:nome_pet;not null" json:"nome_pet"`
	Especie        string  `gorm:"column:especie;not null" json:"especie"`
	Raca           string  `gorm:"column:raca;not null" json:"raca"`
	DataNascimento string  `gorm:"column:data_nascimento;not null" json:"data_nascimento"`
	Observacoes    *string `gorm:"column:observacoes" json:"observacoes"`
}

func (Animal) TableName() string {
	return "animal"
}
