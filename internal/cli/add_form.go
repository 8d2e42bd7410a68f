package cli

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"
	"github.com/jhale/tripgrid/internal/domain"
	"github.com/jhale/tripgrid/internal/engine"
)

// itemSavedMsg reports the outcome of persisting a drag-created item.
type itemSavedMsg struct {
	err error
}

// addForm wraps a huh form that names the item produced by a completed
// creation intent, then persists it through the item repository.
type addForm struct {
	app    *App
	tripID string
	intent engine.CreationIntentEvent
	form   *huh.Form
	name   string
}

func newAddForm(app *App, tripID string, intent engine.CreationIntentEvent) *addForm {
	f := &addForm{app: app, tripID: tripID, intent: intent}
	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title(string(intent.Kind)).
				Description(intent.Start.Format("Mon Jan 2, 15:04") + " – " + intent.End.Format("15:04")),
			huh.NewInput().
				Title("Name").
				Placeholder("e.g. Meiji Shrine").
				Value(&f.name).
				Validate(func(s string) error {
					if s == "" {
						return errors.New("a name is required")
					}
					return nil
				}),
		),
	).WithTheme(tripgridHuhTheme()).WithShowHelp(false)
	return f
}

func (f *addForm) Init() tea.Cmd { return f.form.Init() }

func (f *addForm) Update(msg tea.Msg) (overlayModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return f, func() tea.Msg { return itemSavedMsg{err: errCancelled} }
	}

	form, cmd := f.form.Update(msg)
	if hf, ok := form.(*huh.Form); ok {
		f.form = hf
	}

	if f.form.State == huh.StateCompleted {
		return f, func() tea.Msg { return itemSavedMsg{err: f.save()} }
	}
	return f, cmd
}

func (f *addForm) View() string { return f.form.View() }

var errCancelled = errors.New("cancelled")

func (f *addForm) save() error {
	now := time.Now().UTC()
	item := &domain.ScheduledItem{
		ID:        uuid.NewString(),
		Kind:      f.intent.Kind,
		Name:      f.name,
		Start:     f.intent.Start,
		End:       f.intent.End,
		CreatedAt: now,
		UpdatedAt: now,
	}
	switch item.Kind {
	case domain.KindLodging:
		item.Lodging = &domain.LodgingDetail{}
	case domain.KindTransportation:
		item.Transport = &domain.TransportDetail{}
	}
	return f.app.Items.Create(context.Background(), f.tripID, item)
}
