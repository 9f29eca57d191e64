package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-feed-sync/internal/service"
	"github.com/MKhiriev/go-feed-sync/models"
)

type sender interface {
	Send(msg tea.Msg)
}

// ProgramRenderer hands controller outcomes to the running terminal program
// as messages. The controller calls it from the goroutine that ran the fetch,
// so the model only ever sees outcomes through its Update loop. Outcomes
// produced while no program is attached are dropped.
type ProgramRenderer struct {
	mu      sync.RWMutex
	program sender
}

var _ service.Renderer = (*ProgramRenderer)(nil)

func NewProgramRenderer() *ProgramRenderer {
	return &ProgramRenderer{}
}

func (r *ProgramRenderer) RenderSync(update models.SyncUpdate) {
	r.send(syncRenderedMsg{update: update})
}

func (r *ProgramRenderer) RenderFailure(failure models.SyncFailure) {
	r.send(syncFailedMsg{failure: failure})
}

func (r *ProgramRenderer) RenderRejected(rejected models.NavigationRejected) {
	r.send(navRejectedMsg{rejected: rejected})
}

func (r *ProgramRenderer) attach(p sender) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.program = p
}

func (r *ProgramRenderer) detach() {
	r.attach(nil)
}

func (r *ProgramRenderer) send(msg tea.Msg) {
	r.mu.RLock()
	p := r.program
	r.mu.RUnlock()

	if p != nil {
		p.Send(msg)
	}
}
