// Package playground owns the state of an open playground session: the
// selected component, its live props map and the grouping shown in the panel.
//
// The store is not safe for concurrent use. It is driven from the UI event
// loop, which applies every update in the order it was issued.
package playground

import (
	"fmt"

	"github.com/alexisbeaulieu97/propdeck/internal/catalog"
	"github.com/alexisbeaulieu97/propdeck/internal/classify"
	"github.com/alexisbeaulieu97/propdeck/internal/logger"
	"github.com/alexisbeaulieu97/propdeck/internal/schema"
	propdeckerrors "github.com/alexisbeaulieu97/propdeck/pkg/errors"
)

// Store is the single owner of the props map. Every write goes through
// UpdateProp, which stamps the key with a new version.
type Store struct {
	catalog    *catalog.Catalog
	classifier *classify.Classifier
	log        *logger.Logger

	component catalog.Component
	selected  bool
	defaults  schema.PropsMap
	values    schema.PropsMap
	grouping  schema.GroupingConfig

	// clock only moves forward, so versions stay comparable across
	// selections and resets.
	clock    uint64
	versions map[string]uint64
}

// NewStore creates an empty store over cat.
func NewStore(cat *catalog.Catalog, classifier *classify.Classifier, log *logger.Logger) *Store {
	return &Store{
		catalog:    cat,
		classifier: classifier,
		log:        log,
		values:     schema.PropsMap{},
		defaults:   schema.PropsMap{},
		versions:   map[string]uint64{},
	}
}

// Catalog returns the catalog the store selects from.
func (s *Store) Catalog() *catalog.Catalog {
	return s.catalog
}

// Select makes name the current component, resetting its props to their
// defaults and recomputing the grouping.
func (s *Store) Select(name string) error {
	comp, ok := s.catalog.Lookup(name)
	if !ok {
		return propdeckerrors.NewComponentError(name, "not found in catalog", nil)
	}

	s.component = comp
	s.selected = true
	s.defaults = comp.Props.Defaults()
	s.values = s.defaults.Clone()
	s.grouping = s.groupingFor(comp)
	s.bumpAll()

	s.log.WithFields(map[string]any{
		"component": comp.Name,
		"props":     len(comp.Props),
		"layout":    string(s.grouping.Type),
	}).Debug("component selected")
	return nil
}

func (s *Store) groupingFor(comp catalog.Component) schema.GroupingConfig {
	var grouping schema.GroupingConfig
	if comp.Grouping != nil {
		grouping = *comp.Grouping
	} else {
		grouping = s.classifier.Classify(classify.Input{
			Component: comp.Name,
			Category:  comp.Category,
			Props:     comp.Props,
		})
	}

	hidden := append([]string(nil), grouping.HiddenProps...)
	for _, key := range comp.HiddenProps {
		if !grouping.IsHidden(key) {
			hidden = append(hidden, key)
		}
	}
	grouping.HiddenProps = hidden
	return grouping
}

// Selected returns the current component, if any.
func (s *Store) Selected() (catalog.Component, bool) {
	return s.component, s.selected
}

// Grouping returns the grouping for the current component.
func (s *Store) Grouping() schema.GroupingConfig {
	return s.grouping
}

// Props returns a copy of the live props map.
func (s *Store) Props() schema.PropsMap {
	return s.values.Clone()
}

// Value returns the live value of key.
func (s *Store) Value(key string) any {
	return s.values[key]
}

// Version returns the version of key; it changes on every write to key.
func (s *Store) Version(key string) uint64 {
	return s.versions[key]
}

// UpdateProp stores value under key and returns the key's new version. Keys the
// current component does not declare are ignored and report version 0.
func (s *Store) UpdateProp(key string, value any) uint64 {
	if !s.selected || !s.component.Props.Has(key) {
		s.log.WithFields(map[string]any{"key": key}).Warn("ignoring update for undeclared prop")
		return 0
	}

	s.values[key] = value
	s.clock++
	s.versions[key] = s.clock
	return s.clock
}

// Reset restores every prop to its default. Every version moves forward so
// open editors treat the change as external.
func (s *Store) Reset() {
	if !s.selected {
		return
	}
	s.values = s.defaults.Clone()
	s.bumpAll()
	s.log.Debug("props reset")
}

// Reload swaps in a new catalog. The current component stays selected, with
// its values kept where the prop still exists, when the new catalog has it.
func (s *Store) Reload(cat *catalog.Catalog) error {
	s.catalog = cat
	if !s.selected {
		return nil
	}

	previous := s.values
	name := s.component.Name
	if _, ok := cat.Lookup(name); !ok {
		s.selected = false
		s.component = catalog.Component{}
		s.values = schema.PropsMap{}
		s.defaults = schema.PropsMap{}
		s.grouping = schema.GroupingConfig{}
		return propdeckerrors.NewComponentError(name, "removed from catalog", nil)
	}

	if err := s.Select(name); err != nil {
		return fmt.Errorf("reselect after reload: %w", err)
	}
	for key, value := range previous {
		if s.component.Props.Has(key) {
			s.values[key] = value
		}
	}
	return nil
}

// Changed lists the props whose value differs from the default, in declaration order.
func (s *Store) Changed() []string {
	var changed []string
	for _, prop := range s.component.Props {
		if schema.FormatValue(s.values[prop.Name]) != schema.FormatValue(s.defaults[prop.Name]) {
			changed = append(changed, prop.Name)
		}
	}
	return changed
}

// Code renders the current component with its live props.
func (s *Store) Code() string {
	if !s.selected {
		return ""
	}
	return RenderCode(s.component.Name, s.component.Props, s.values)
}

// DefaultCode renders the current component with its default props.
func (s *Store) DefaultCode() string {
	if !s.selected {
		return ""
	}
	return RenderCode(s.component.Name, s.component.Props, s.defaults)
}

func (s *Store) bumpAll() {
	s.clock++
	for _, prop := range s.component.Props {
		s.versions[prop.Name] = s.clock
	}
}
