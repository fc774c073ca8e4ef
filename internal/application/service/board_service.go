package service

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/lotuspos/counter/internal/domain/entity"
	"github.com/lotuspos/counter/internal/domain/gateway"
	"github.com/lotuspos/counter/pkg/apperror"
)

// Source produces the board's backend data. The poller refreshes through
// this interface so tests can substitute a fake.
type Source interface {
	gateway.CatalogGateway
	gateway.OrderGateway
}

// BoardService maintains the table board: sections, tables, each table's
// open bill, the selected section and the keyboard-wedge buffer.
type BoardService struct {
	source Source

	pollInterval time.Duration
	keyIdleClear time.Duration
	now          func() time.Time

	mu       sync.Mutex
	sections []entity.Section
	tables   []entity.Table
	bills    map[string]*entity.BillSummary
	selected string // explicit selection; "" falls back to the default section

	keyBuf  string
	keyLast time.Time
}

func NewBoardService(source Source, pollInterval, keyIdleClear time.Duration) *BoardService {
	return &BoardService{
		source:       source,
		pollInterval: pollInterval,
		keyIdleClear: keyIdleClear,
		now:          time.Now,
		bills:        map[string]*entity.BillSummary{},
	}
}

// Refresh pulls a fresh snapshot from the backend: sections, tables and
// the first temporary bill per table.
func (s *BoardService) Refresh(ctx context.Context) error {
	sections, err := s.source.ListSections(ctx)
	if err != nil {
		return err
	}
	tables, err := s.source.ListTables(ctx)
	if err != nil {
		return err
	}

	bills := make(map[string]*entity.BillSummary, len(tables))
	for _, table := range tables {
		tableBills, err := s.source.BillsByTable(ctx, table.ID)
		if err != nil {
			return err
		}
		for i := range tableBills {
			if tableBills[i].IsTemporary {
				bill := tableBills[i]
				bill.TableID = table.ID
				bill.TableName = table.Name
				bills[table.ID] = &bill
				break
			}
		}
	}

	s.mu.Lock()
	s.sections = sections
	s.tables = tables
	s.bills = bills
	s.mu.Unlock()
	return nil
}

// StartPolling refreshes the board on a fixed interval until ctx is done.
// Failed refreshes are logged and retried on the next tick.
func (s *BoardService) StartPolling(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(s.pollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := s.Refresh(ctx); err != nil {
					log.Printf("board: refresh failed: %v", err)
				}
			}
		}
	}()
}

// Snapshot returns the board as currently known.
func (s *BoardService) Snapshot() entity.BoardSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *BoardService) snapshotLocked() entity.BoardSnapshot {
	bills := make(map[string]*entity.BillSummary, len(s.bills))
	for id, bill := range s.bills {
		b := *bill
		bills[id] = &b
	}
	return entity.BoardSnapshot{
		Sections:        append([]entity.Section(nil), s.sections...),
		Tables:          append([]entity.Table(nil), s.tables...),
		Bills:           bills,
		SelectedSection: s.selectedSectionLocked(),
		InUseCount:      len(s.bills),
	}
}

// selectedSectionLocked resolves the effective section id: the explicit
// selection while it still exists, otherwise the default section.
func (s *BoardService) selectedSectionLocked() string {
	if s.selected != "" {
		for _, sec := range s.sections {
			if sec.ID == s.selected {
				return s.selected
			}
		}
	}
	for _, sec := range s.sections {
		if sec.IsDefault {
			return sec.ID
		}
	}
	if len(s.sections) > 0 {
		return s.sections[0].ID
	}
	return ""
}

// SelectSection sets the section filter by id. Selecting the already-
// selected section toggles it off, falling back to the default section.
func (s *BoardService) SelectSection(sectionID string) entity.BoardSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == sectionID {
		s.selected = ""
	} else {
		s.selected = sectionID
	}
	return s.snapshotLocked()
}

// ActivateTable resolves what happens when a table is tapped: the payment
// panel when its bill is temporary and already printed, order entry
// otherwise.
func (s *BoardService) ActivateTable(tableID string) (*entity.TableActivation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var table *entity.Table
	for i := range s.tables {
		if s.tables[i].ID == tableID {
			table = &s.tables[i]
			break
		}
	}
	if table == nil {
		return nil, apperror.NewNotFoundError("Table")
	}

	activation := &entity.TableActivation{
		TableID:   table.ID,
		TableName: table.Name,
	}
	if bill, ok := s.bills[tableID]; ok && bill.IsTemporary && bill.IsPrint == 1 {
		b := *bill
		activation.OpenPayment = true
		activation.Bill = &b
	} else {
		activation.OrderRoute = "/order/" + table.ID
	}
	return activation, nil
}

// KeyInput feeds keyboard-wedge characters into the buffer. The buffer
// self-clears after the idle window. Enter resolves the buffer against
// table names in the selected section and activates the match.
func (s *BoardService) KeyInput(input string) (*entity.TableActivation, error) {
	s.mu.Lock()

	now := s.now()
	if !s.keyLast.IsZero() && now.Sub(s.keyLast) > s.keyIdleClear {
		s.keyBuf = ""
	}
	s.keyLast = now

	for _, r := range input {
		if r == '\n' || r == '\r' {
			name := s.keyBuf
			s.keyBuf = ""
			sectionID := s.selectedSectionLocked()
			tableID := ""
			for _, table := range s.tables {
				if table.Name == name && table.Section.ID == sectionID {
					tableID = table.ID
					break
				}
			}
			s.mu.Unlock()
			if tableID == "" {
				if strings.TrimSpace(name) == "" {
					return nil, nil
				}
				return nil, apperror.NewNotFoundError("Table " + name)
			}
			return s.ActivateTable(tableID)
		}
		s.keyBuf += string(r)
	}

	s.mu.Unlock()
	return nil, nil
}

// KeyBuffer returns the current wedge buffer, expiring it when idle.
func (s *BoardService) KeyBuffer() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.keyLast.IsZero() && s.now().Sub(s.keyLast) > s.keyIdleClear {
		s.keyBuf = ""
	}
	return s.keyBuf
}
