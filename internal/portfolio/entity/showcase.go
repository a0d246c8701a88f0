package entity

// Project is one data/projects/*.json document. Slug is the file name
// without its extension.
type Project struct {
	Slug         string   `json:"-"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Date         string   `json:"date"`
	Technologies []string `json:"technologies"`
	Image        string   `json:"image"`
	GitHub       string   `json:"github"`
	Demo         string   `json:"demo"`
	Highlights   []string `json:"highlights"`
}

// Certificate is one data/certificates/*.json document.
type Certificate struct {
	Slug          string   `json:"-"`
	Title         string   `json:"title"`
	Issuer        string   `json:"issuer"`
	Date          string   `json:"date"`
	Image         string   `json:"image"`
	CredentialURL string   `json:"credential_url"`
	Skills        []string `json:"skills"`
}

func (p Project) SortDate() string     { return p.Date }
func (c Certificate) SortDate() string { return c.Date }
