package systems

import (
	"fmt"

	"tempest/pkg/actor"
	"tempest/pkg/logger"
	"tempest/pkg/shared/ecs"
	"tempest/pkg/sim"
	"tempest/pkg/storage"
)

// PersistenceSystem saves and restores actors under stable save names.
type PersistenceSystem struct {
	Sim *sim.Simulation
	Dir string

	names map[ecs.Entity]string
}

func NewPersistenceSystem(s *sim.Simulation, dir string) *PersistenceSystem {
	if dir == "" {
		dir = storage.DataDir
	}
	return &PersistenceSystem{
		Sim:   s,
		Dir:   dir,
		names: make(map[ecs.Entity]string),
	}
}

// Profile loads the saved profile for saveName. A missing save yields the
// zero Profile so the preset applies.
func (s *PersistenceSystem) Profile(saveName string) (actor.Profile, error) {
	rec, err := storage.LoadCharacter(s.Dir, saveName)
	if err != nil {
		return actor.Profile{}, fmt.Errorf("load %s: %w", saveName, err)
	}
	if rec == nil {
		return actor.Profile{}, nil
	}
	p, err := actor.ParseCharacterData(rec.Fields)
	if err != nil {
		return actor.Profile{}, fmt.Errorf("load %s: %w", saveName, err)
	}
	return p, nil
}

// Track registers e to be saved as saveName.
func (s *PersistenceSystem) Track(e ecs.Entity, saveName string) {
	s.names[e] = saveName
}

func (s *PersistenceSystem) Save(e ecs.Entity) error {
	saveName, ok := s.names[e]
	if !ok {
		return nil
	}
	a := s.Sim.Actor(e)
	if a == nil {
		logger.Log.Debugf("PersistenceSystem: Skip save for %s, actor is gone", saveName)
		return nil
	}

	rec := a.Record()
	rec.Name = saveName
	if err := storage.SaveCharacter(s.Dir, rec); err != nil {
		logger.Log.WithError(err).Errorf("Failed to save %s", saveName)
		return err
	}
	logger.Log.Infof("Saved data for %s", saveName)
	return nil
}

// SaveAll saves every tracked actor still alive and returns the first error.
func (s *PersistenceSystem) SaveAll() error {
	var first error
	for _, e := range s.Sim.Actors() {
		if err := s.Save(e); err != nil && first == nil {
			first = err
		}
	}
	return first
}
