package repositories

import (
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
)

type Repositories struct {
	Events     *EventRepository
	Traditions *TraditionRepository
	BigBoard   *BigBoardRepository
	Groups     *GroupEventRepository
	Series     *SeriesRepository
	Taggings   *TaggingRepository
	Areas      *AreaRepository
	Views      *SavedViewRepository
}

func New(db postgres.DB) *Repositories {
	events := &EventRepository{db: db}
	traditions := &TraditionRepository{db: db}
	bigBoard := &BigBoardRepository{db: db}
	groups := &GroupEventRepository{db: db}
	series := &SeriesRepository{db: db}
	taggings := &TaggingRepository{db: db}
	areas := &AreaRepository{db: db}
	views := &SavedViewRepository{db: db}

	return &Repositories{
		Events:     events,
		Traditions: traditions,
		BigBoard:   bigBoard,
		Groups:     groups,
		Series:     series,
		Taggings:   taggings,
		Areas:      areas,
		Views:      views,
	}
}

func derefStr(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
