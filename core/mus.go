package core

import (
	"github.com/mus-format/mus-go"
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

// Hand-written MUS serializers for the domain types. These define the
// persisted wire format for place lists; field order must stay stable
// across releases.

// IDMUS serializes ID values.
var IDMUS = idMUS{}

type idMUS struct{}

var _ mus.Serializer[ID] = IDMUS

func (idMUS) Marshal(id ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (idMUS) Unmarshal(bs []byte) (id ID, n int, err error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idMUS) Size(id ID) (size int) {
	return varint.Uint64.Size(uint64(id))
}

func (idMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

// CoordinatesMUS serializes Coordinates values.
var CoordinatesMUS = coordinatesMUS{}

type coordinatesMUS struct{}

var _ mus.Serializer[Coordinates] = CoordinatesMUS

func (coordinatesMUS) Marshal(c Coordinates, bs []byte) (n int) {
	n = raw.Float64.Marshal(c.Lat, bs)
	n += raw.Float64.Marshal(c.Lon, bs[n:])
	return n
}

func (coordinatesMUS) Unmarshal(bs []byte) (c Coordinates, n int, err error) {
	c.Lat, n, err = raw.Float64.Unmarshal(bs)
	if err != nil {
		return c, n, err
	}
	var n1 int
	c.Lon, n1, err = raw.Float64.Unmarshal(bs[n:])
	n += n1
	return c, n, err
}

func (coordinatesMUS) Size(c Coordinates) (size int) {
	return raw.Float64.Size(c.Lat) + raw.Float64.Size(c.Lon)
}

func (coordinatesMUS) Skip(bs []byte) (n int, err error) {
	n, err = raw.Float64.Skip(bs)
	if err != nil {
		return n, err
	}
	var n1 int
	n1, err = raw.Float64.Skip(bs[n:])
	return n + n1, err
}

// PlaceMUS serializes Place values.
var PlaceMUS = placeMUS{}

type placeMUS struct{}

var _ mus.Serializer[Place] = PlaceMUS

func (placeMUS) Marshal(p Place, bs []byte) (n int) {
	n = IDMUS.Marshal(p.Id, bs)
	n += ord.String.Marshal(p.Name, bs[n:])
	n += ord.String.Marshal(p.Address, bs[n:])
	n += ord.String.Marshal(p.Category, bs[n:])
	n += CoordinatesMUS.Marshal(p.Coord, bs[n:])
	return n
}

func (placeMUS) Unmarshal(bs []byte) (p Place, n int, err error) {
	var n1 int
	p.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return p, n, err
	}
	p.Name, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return p, n, err
	}
	p.Address, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return p, n, err
	}
	p.Category, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return p, n, err
	}
	p.Coord, n1, err = CoordinatesMUS.Unmarshal(bs[n:])
	n += n1
	return p, n, err
}

func (placeMUS) Size(p Place) (size int) {
	size = IDMUS.Size(p.Id)
	size += ord.String.Size(p.Name)
	size += ord.String.Size(p.Address)
	size += ord.String.Size(p.Category)
	size += CoordinatesMUS.Size(p.Coord)
	return size
}

func (placeMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return n, err
	}
	for i := 0; i < 3; i++ {
		n1, err = ord.String.Skip(bs[n:])
		n += n1
		if err != nil {
			return n, err
		}
	}
	n1, err = CoordinatesMUS.Skip(bs[n:])
	return n + n1, err
}

// PlaceSliceMUS serializes ordered sequences of places.
var PlaceSliceMUS = ord.NewSliceSer[Place](PlaceMUS)
