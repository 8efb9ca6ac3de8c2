package store

import (
	"context"

	"github.com/jrsteele09/taskflow-client/api"
	"github.com/jrsteele09/taskflow-client/models"
	"github.com/jrsteele09/taskflow-client/transport"
)

// DependencyStore caches the dependencies of one task, the tasks depending on it and its tree.
type DependencyStore struct {
	*Collection[models.Dependency, TaskScope]
	api *api.Dependencies

	extra      state
	dependents []models.Dependency
	tree       *models.DependencyTree
}

func NewDependencyStore(deps *api.Dependencies, opts ...Option) *DependencyStore {
	s := newSettings(opts)
	return &DependencyStore{
		Collection: newCollection(collectionSpec[models.Dependency, TaskScope]{
			plural:   "dependencies",
			singular: "dependency",
			list: func(ctx context.Context, scope TaskScope, _ Page) ([]models.Dependency, transport.PageMeta, error) {
				return unpaged(deps.ForTask(ctx, scope.TaskID))
			},
			get: func(context.Context, int64) (models.Dependency, error) {
				return models.Dependency{}, errUnsupported("dependencies")
			},
		}, s),
		api:   deps,
		extra: state{log: s.logger.With().Str("store", "dependents").Logger()},
	}
}

func (s *DependencyStore) FetchForTask(ctx context.Context, taskID int64) {
	s.SetFilters(TaskScope{TaskID: taskID})
	s.FetchList(ctx, nil, true)
}

func (s *DependencyStore) TaskID() int64 {
	return s.Filters().TaskID
}

func (s *DependencyStore) FetchDependents(ctx context.Context, taskID int64) error {
	done := s.extra.track()
	defer done()

	deps, err := s.api.Dependents(ctx, taskID)
	if err != nil {
		return s.extra.fail(err, "Failed to fetch dependents")
	}
	set(&s.extra, &s.dependents, deps)
	return nil
}

func (s *DependencyStore) FetchTree(ctx context.Context, taskID int64) error {
	done := s.extra.track()
	defer done()

	tree, err := s.api.Tree(ctx, taskID)
	if err != nil {
		return s.extra.fail(err, "Failed to fetch dependency tree")
	}
	set(&s.extra, &s.tree, &tree)
	return nil
}

// Create appends the new dependency of taskID.
func (s *DependencyStore) Create(ctx context.Context, taskID int64, data models.CreateDependencyData) (models.Dependency, error) {
	return mutate(s.Collection, "Failed to create dependency", func() (models.Dependency, error) {
		return s.api.Create(ctx, taskID, data)
	}, s.appendItem)
}

func (s *DependencyStore) Remove(ctx context.Context, id int64) error {
	return drop(s.Collection, "Failed to delete dependency", id, func() error {
		return s.api.Delete(ctx, id)
	})
}

func (s *DependencyStore) Dependents() []models.Dependency {
	return append([]models.Dependency(nil), read(&s.extra, &s.dependents)...)
}

func (s *DependencyStore) Tree() (models.DependencyTree, bool) {
	tree := read(&s.extra, &s.tree)
	if tree == nil {
		return models.DependencyTree{}, false
	}
	return *tree, true
}

func (s *DependencyStore) BlockedBy() []models.Dependency {
	return s.ofType(models.DependencyBlockedBy)
}

func (s *DependencyStore) Blocks() []models.Dependency {
	return s.ofType(models.DependencyBlocks)
}

func (s *DependencyStore) Related() []models.Dependency {
	return s.ofType(models.DependencyRelatedTo)
}

// Err reports the latest failure of either the dependency list or the dependents and tree.
func (s *DependencyStore) Err() string {
	if err := s.Collection.Err(); err != "" {
		return err
	}
	return s.extra.Err()
}

func (s *DependencyStore) Reset() {
	s.Collection.Reset()
	set(&s.extra, &s.dependents, nil)
	set(&s.extra, &s.tree, nil)
	set(&s.extra, &s.extra.err, "")
}

func (s *DependencyStore) ofType(kind string) []models.Dependency {
	var out []models.Dependency
	for _, d := range s.Items() {
		if d.DependencyType == kind {
			out = append(out, d)
		}
	}
	return out
}
