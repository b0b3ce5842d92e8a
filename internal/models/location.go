package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// NoLocationProvided - явная метка вместо координат, когда заявитель отказался от геолокации
// или геокодирование не удалось
const NoLocationProvided = "No precise location provided"

const (
	SourceDevice   = "device"
	SourceGeocoded = "geocoded"
)

// Coordinates - точка на карте
type Coordinates struct {
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Accuracy float64 `json:"accuracy,omitempty"`
	Source   string  `json:"source,omitempty"`
}

// Valid проверяет диапазоны широты и долготы
func (c Coordinates) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// Location - адрес и, если есть, координаты.
// Coordinates == nil сериализуется как метка NoLocationProvided, а не null.
type Location struct {
	Address     string
	Coordinates *Coordinates
}

// HasCoordinates сообщает, известны ли координаты
func (l Location) HasCoordinates() bool {
	return l.Coordinates != nil
}

type locationJSON struct {
	Address     string          `json:"address"`
	Coordinates json.RawMessage `json:"coordinates"`
}

func (l Location) MarshalJSON() ([]byte, error) {
	var coords []byte
	var err error
	if l.Coordinates != nil {
		coords, err = json.Marshal(l.Coordinates)
	} else {
		coords, err = json.Marshal(NoLocationProvided)
	}
	if err != nil {
		return nil, err
	}
	return json.Marshal(locationJSON{Address: l.Address, Coordinates: coords})
}

// UnmarshalJSON принимает координаты объектом; строка, null или отсутствие поля означают "нет координат"
func (l *Location) UnmarshalJSON(data []byte) error {
	var raw locationJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("invalid location: %w", err)
	}
	l.Address = raw.Address
	l.Coordinates = nil

	trimmed := bytes.TrimSpace(raw.Coordinates)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil
	}
	var c Coordinates
	if err := json.Unmarshal(trimmed, &c); err != nil {
		return fmt.Errorf("invalid location coordinates: %w", err)
	}
	if !c.Valid() {
		return nil
	}
	l.Coordinates = &c
	return nil
}
