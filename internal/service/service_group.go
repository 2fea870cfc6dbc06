package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-small-safe/internal/logger"
	"github.com/MKhiriev/go-small-safe/internal/utils"
	"github.com/MKhiriev/go-small-safe/internal/validators"
	"github.com/MKhiriev/go-small-safe/models"
)

type idGenerator interface {
	Generate() uuid.UUID
}

type groupService struct {
	safes     SafeReadWriteService
	validator validators.Validator
	ids       idGenerator
	now       func() time.Time

	// mu serialises read-modify-write cycles issued through this service.
	mu sync.Mutex

	logger *logger.Logger
}

func NewGroupService(safes SafeReadWriteService, logger *logger.Logger) GroupService {
	return &groupService{
		safes:     safes,
		validator: validators.NewSafeValidator(),
		ids:       utils.NewUUIDGenerator(),
		now:       func() time.Time { return time.Now().UTC().Round(0) },
		logger:    logger,
	}
}

// modify reads the safe, applies fn and writes the result back. Nothing is
// written when fn fails.
func (g *groupService) modify(ctx context.Context, creds models.SafeCredentials, fn func(groups []models.Group) ([]models.Group, error)) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	groups, err := g.safes.ReadGroups(ctx, creds)
	if err != nil {
		return err
	}

	groups, err = fn(groups)
	if err != nil {
		return err
	}

	return g.safes.WriteGroups(ctx, creds, groups)
}

func (g *groupService) ListGroups(ctx context.Context, creds models.SafeCredentials) ([]models.Group, error) {
	groups, err := g.safes.ReadGroups(ctx, creds)
	if err != nil {
		return nil, err
	}
	return models.ActiveGroups(groups), nil
}

func (g *groupService) AddGroup(ctx context.Context, creds models.SafeCredentials, name string) (models.Group, error) {
	now := g.now()
	group := models.Group{
		ID:              g.ids.Generate(),
		Name:            strings.TrimSpace(name),
		Entries:         []models.Entry{},
		EntriesHistory:  []models.Entry{},
		PreserveHistory: true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := g.validator.Validate(ctx, group); err != nil {
		return models.Group{}, err
	}

	err := g.modify(ctx, creds, func(groups []models.Group) ([]models.Group, error) {
		for _, existing := range groups {
			if existing.IsActive() && strings.EqualFold(existing.Name, group.Name) {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateGroup, group.Name)
			}
		}
		return append(groups, group), nil
	})
	if err != nil {
		return models.Group{}, err
	}

	logger.FromContext(ctx).Debug().Str("group", group.ID.String()).Msg("group added")
	return group, nil
}

func (g *groupService) DeleteGroup(ctx context.Context, creds models.SafeCredentials, groupID uuid.UUID) error {
	return g.modify(ctx, creds, func(groups []models.Group) ([]models.Group, error) {
		i, err := findActiveGroup(groups, groupID)
		if err != nil {
			return nil, err
		}
		now := g.now()
		groups[i].DeletedAt = &now
		groups[i].UpdatedAt = now
		return groups, nil
	})
}

func (g *groupService) MoveGroup(ctx context.Context, creds models.SafeCredentials, groupID uuid.UUID, prevID *uuid.UUID) error {
	return g.modify(ctx, creds, func(groups []models.Group) ([]models.Group, error) {
		if _, err := findActiveGroup(groups, groupID); err != nil {
			return nil, err
		}
		if prevID != nil {
			if _, err := findActiveGroup(groups, *prevID); err != nil {
				return nil, fmt.Errorf("previous group: %w", err)
			}
		}
		return moveAfter(groups, groupKey, groupID, prevID), nil
	})
}

func (g *groupService) ListEntries(ctx context.Context, creds models.SafeCredentials, groupID uuid.UUID) ([]models.Entry, error) {
	group, err := g.readGroup(ctx, creds, groupID)
	if err != nil {
		return nil, err
	}
	return group.ActiveEntries(), nil
}

func (g *groupService) AddEntry(ctx context.Context, creds models.SafeCredentials, groupID uuid.UUID, name, value string) (models.Entry, error) {
	now := g.now()
	entry := models.Entry{
		ID:        g.ids.Generate(),
		Name:      strings.TrimSpace(name),
		Value:     value,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := g.validator.Validate(ctx, entry); err != nil {
		return models.Entry{}, err
	}

	err := g.modify(ctx, creds, func(groups []models.Group) ([]models.Group, error) {
		i, err := findActiveGroup(groups, groupID)
		if err != nil {
			return nil, err
		}
		groups[i].Entries = append(groups[i].Entries, entry)
		groups[i].UpdatedAt = now
		return groups, nil
	})
	if err != nil {
		return models.Entry{}, err
	}

	return entry, nil
}

func (g *groupService) UpdateEntry(ctx context.Context, creds models.SafeCredentials, groupID, entryID uuid.UUID, value string) (models.Entry, error) {
	if err := g.validator.Validate(ctx, models.Entry{Value: value}, validators.FieldValue); err != nil {
		return models.Entry{}, err
	}

	var updated models.Entry
	err := g.modify(ctx, creds, func(groups []models.Group) ([]models.Group, error) {
		i, j, err := findActiveEntry(groups, groupID, entryID)
		if err != nil {
			return nil, err
		}

		group := &groups[i]
		if group.PreserveHistory {
			group.EntriesHistory = append(group.EntriesHistory, group.Entries[j].Snapshot())
		}

		now := g.now()
		group.Entries[j].Value = value
		group.Entries[j].UpdatedAt = now
		group.UpdatedAt = now
		updated = group.Entries[j]
		return groups, nil
	})
	if err != nil {
		return models.Entry{}, err
	}

	return updated, nil
}

func (g *groupService) DeleteEntry(ctx context.Context, creds models.SafeCredentials, groupID, entryID uuid.UUID) error {
	return g.modify(ctx, creds, func(groups []models.Group) ([]models.Group, error) {
		i, j, err := findActiveEntry(groups, groupID, entryID)
		if err != nil {
			return nil, err
		}
		now := g.now()
		groups[i].Entries[j].DeletedAt = &now
		groups[i].Entries[j].UpdatedAt = now
		groups[i].UpdatedAt = now
		return groups, nil
	})
}

func (g *groupService) MoveEntry(ctx context.Context, creds models.SafeCredentials, groupID, entryID uuid.UUID, prevID *uuid.UUID) error {
	return g.modify(ctx, creds, func(groups []models.Group) ([]models.Group, error) {
		i, _, err := findActiveEntry(groups, groupID, entryID)
		if err != nil {
			return nil, err
		}
		if prevID != nil {
			if _, _, err = findActiveEntry(groups, groupID, *prevID); err != nil {
				return nil, fmt.Errorf("previous entry: %w", err)
			}
		}
		groups[i].Entries = moveAfter(groups[i].Entries, entryKey, entryID, prevID)
		return groups, nil
	})
}

func (g *groupService) SortEntries(ctx context.Context, creds models.SafeCredentials, groupID uuid.UUID) error {
	return g.modify(ctx, creds, func(groups []models.Group) ([]models.Group, error) {
		i, err := findActiveGroup(groups, groupID)
		if err != nil {
			return nil, err
		}
		sortEntriesByName(groups[i].Entries)
		sortGroupsByName(groups)
		return groups, nil
	})
}

func (g *groupService) EntryHistory(ctx context.Context, creds models.SafeCredentials, groupID, entryID uuid.UUID) ([]models.Entry, error) {
	group, err := g.readGroup(ctx, creds, groupID)
	if err != nil {
		return nil, err
	}

	history := make([]models.Entry, 0)
	for _, snapshot := range group.EntriesHistory {
		if snapshot.ID == entryID {
			history = append(history, snapshot)
		}
	}
	if len(history) == 0 && group.FindEntry(entryID) < 0 {
		return nil, ErrEntryNotFound
	}

	return history, nil
}

func (g *groupService) PurgeEntryHistory(ctx context.Context, creds models.SafeCredentials, groupID, entryID uuid.UUID) error {
	return g.modify(ctx, creds, func(groups []models.Group) ([]models.Group, error) {
		i, err := findActiveGroup(groups, groupID)
		if err != nil {
			return nil, err
		}
		groups[i].EntriesHistory = slices.DeleteFunc(groups[i].EntriesHistory, func(e models.Entry) bool {
			return e.ID == entryID
		})
		return groups, nil
	})
}

func (g *groupService) Find(ctx context.Context, creds models.SafeCredentials, req models.FindRequest) (models.FindResult, error) {
	if err := g.validator.Validate(ctx, req); err != nil {
		return models.FindResult{}, err
	}

	groups, err := g.ListGroups(ctx, creds)
	if err != nil {
		return models.FindResult{}, err
	}

	query := strings.TrimSpace(req.Query)
	result := models.FindResult{Query: query, Groups: []models.Group{}, Entries: []models.EntryMatch{}}
	for _, group := range groups {
		if containsFold(group.Name, query) {
			result.Groups = append(result.Groups, group)
		}
		for _, entry := range group.ActiveEntries() {
			if containsFold(entry.Name, query) {
				result.Entries = append(result.Entries, models.EntryMatch{Group: group, Entry: entry})
			}
		}
	}

	return result, nil
}

func (g *groupService) GetEntryValue(ctx context.Context, creds models.SafeCredentials, groupID, entryID uuid.UUID) (string, error) {
	group, err := g.readGroup(ctx, creds, groupID)
	if err != nil {
		return "", err
	}

	j := group.FindEntry(entryID)
	if j < 0 || !group.Entries[j].IsActive() {
		return "", ErrEntryNotFound
	}

	return group.Entries[j].Value, nil
}

func (g *groupService) readGroup(ctx context.Context, creds models.SafeCredentials, groupID uuid.UUID) (models.Group, error) {
	groups, err := g.safes.ReadGroups(ctx, creds)
	if err != nil {
		return models.Group{}, err
	}

	i, err := findActiveGroup(groups, groupID)
	if err != nil {
		return models.Group{}, err
	}

	return groups[i], nil
}

func findActiveGroup(groups []models.Group, id uuid.UUID) (int, error) {
	i := slices.IndexFunc(groups, func(g models.Group) bool { return g.ID == id && g.IsActive() })
	if i < 0 {
		return -1, ErrGroupNotFound
	}
	return i, nil
}

func findActiveEntry(groups []models.Group, groupID, entryID uuid.UUID) (int, int, error) {
	i, err := findActiveGroup(groups, groupID)
	if err != nil {
		return -1, -1, err
	}

	j := groups[i].FindEntry(entryID)
	if j < 0 || !groups[i].Entries[j].IsActive() {
		return -1, -1, ErrEntryNotFound
	}

	return i, j, nil
}
