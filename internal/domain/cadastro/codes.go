package cadastro

// Códigos de negócio do fluxo de cadastro.
const (
	CodeCamposDono   = "campos_dono_obrigatorios"
	CodeCamposPet    = "campos_pet_obrigatorios"
	CodeCPFDuplicado = "cpf_ja_cadastrado"
)
