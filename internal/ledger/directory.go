package ledger

import (
	"strings"

	"fjacquet/vx-finance/internal/ledgererror"
	"fjacquet/vx-finance/internal/logging"
	"fjacquet/vx-finance/internal/models"
)

// AddClient appends a new client.
func (l *Ledger) AddClient(name string) (models.Client, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Client{}, ledgererror.Validation("client", "name", "", ledgererror.ErrEmptyName)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	client := models.Client{ID: l.newID(), Name: name}
	l.state.Clients = append(l.state.Clients, client)
	l.logger.Debug("Client added", logging.F(logging.FieldClientID, client.ID))
	l.commit("add_client")
	return client, nil
}

// RemoveClient deletes a client. Projects and transactions referencing it are
// kept and resolve to RemovedLabel. Returns false when the id is unknown.
func (l *Ledger) RemoveClient(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, c := range l.state.Clients {
		if c.ID == id {
			l.state.Clients = append(l.state.Clients[:i:i], l.state.Clients[i+1:]...)
			l.logger.Debug("Client removed", logging.F(logging.FieldClientID, id))
			l.commit("remove_client")
			return true
		}
	}
	return false
}

// AddProject appends a new project owned by an existing client.
func (l *Ledger) AddProject(name, clientID string) (models.Project, error) {
	name = strings.TrimSpace(name)
	clientID = strings.TrimSpace(clientID)
	if name == "" {
		return models.Project{}, ledgererror.Validation("project", "name", "", ledgererror.ErrEmptyName)
	}
	if clientID == "" {
		return models.Project{}, ledgererror.Validation("project", "clientId", "", ledgererror.ErrEmptyReference)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.findClient(clientID); !ok {
		return models.Project{}, ledgererror.Validation("project", "clientId", clientID, ledgererror.ErrUnknownClient)
	}

	project := models.Project{ID: l.newID(), Name: name, ClientID: clientID}
	l.state.Projects = append(l.state.Projects, project)
	l.logger.Debug("Project added",
		logging.F(logging.FieldProjectID, project.ID),
		logging.F(logging.FieldClientID, clientID))
	l.commit("add_project")
	return project, nil
}

// RemoveProject deletes a project. Transactions referencing it are kept.
// Returns false when the id is unknown.
func (l *Ledger) RemoveProject(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, p := range l.state.Projects {
		if p.ID == id {
			l.state.Projects = append(l.state.Projects[:i:i], l.state.Projects[i+1:]...)
			l.logger.Debug("Project removed", logging.F(logging.FieldProjectID, id))
			l.commit("remove_project")
			return true
		}
	}
	return false
}
