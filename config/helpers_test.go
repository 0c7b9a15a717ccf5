package config_test

import (
	"github.com/katalvlaran/pathfinding/city"
	"github.com/katalvlaran/pathfinding/config"
)

func cityFrom(cfg config.Config, seed int64) (city.Town, error) {
	return city.Generate(cfg.Town.Cities, cfg.Town.GridSize, cfg.CityOptions(seed)...)
}
