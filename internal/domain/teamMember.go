package domain

// TeamMember é um membro da equipe persistido no arquivo de equipe
type TeamMember struct {
	ID     int    `json:"id" mapstructure:"id"`
	Name   string `json:"name" mapstructure:"name"`
	Email  string `json:"email" mapstructure:"email"`
	Phone  string `json:"phone" mapstructure:"phone"`
	Role   string `json:"role" mapstructure:"role"`
	Access string `json:"access" mapstructure:"access"`
}

// CreateTeamMemberRequest é o corpo recebido pelo formulário de cadastro
type CreateTeamMemberRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Contact     string `json:"contact"`
	Role        string `json:"role"`
	AccessLevel string `json:"accessLevel"`
}
