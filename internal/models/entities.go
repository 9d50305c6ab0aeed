package models

// Client is a customer transactions and projects can be attributed to.
type Client struct {
	ID   string `json:"id" yaml:"id" csv:"ID"`
	Name string `json:"name" yaml:"name" csv:"Name"`
}

// Project belongs to a client by id. The reference is resolved on read, so a
// project whose client was removed stays valid.
type Project struct {
	ID       string `json:"id" yaml:"id" csv:"ID"`
	Name     string `json:"name" yaml:"name" csv:"Name"`
	ClientID string `json:"clientId" yaml:"clientId" csv:"ClientID"`
}

// Category is identified by its name, unique case-insensitively.
type Category struct {
	Name  string        `json:"name" yaml:"name" csv:"Name"`
	Group CategoryGroup `json:"group" yaml:"group" csv:"Group"`
}

// AppState is the full ledger, persisted and restored as one unit.
type AppState struct {
	Transactions []Transaction `json:"transactions" yaml:"transactions"`
	Clients      []Client      `json:"clients" yaml:"clients"`
	Projects     []Project     `json:"projects" yaml:"projects"`
	Categories   []Category    `json:"categories" yaml:"categories"`
}

// Clone returns a copy of the state that shares no slices with s.
func (s AppState) Clone() AppState {
	return AppState{
		Transactions: append([]Transaction{}, s.Transactions...),
		Clients:      append([]Client{}, s.Clients...),
		Projects:     append([]Project{}, s.Projects...),
		Categories:   append([]Category{}, s.Categories...),
	}
}
