package geo_test

import (
	"errors"
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/mkarimian/geochron/internal/domain/geo"
)

func TestCoordinateValidate(t *testing.T) {
	Convey("Given coordinates", t, func() {
		Convey("Then in-range values validate", func() {
			So(geo.Coordinate{Lat: 48.8566, Lng: 2.3522}.Validate(), ShouldBeNil)
			So(geo.Coordinate{Lat: -90, Lng: 180}.Validate(), ShouldBeNil)
		})

		Convey("And out-of-range latitude is rejected", func() {
			err := geo.Coordinate{Lat: 91, Lng: 0}.Validate()
			So(errors.Is(err, geo.ErrInvalidCoordinate), ShouldBeTrue)
		})

		Convey("And out-of-range longitude is rejected", func() {
			err := geo.Coordinate{Lat: 0, Lng: -180.5}.Validate()
			So(errors.Is(err, geo.ErrInvalidCoordinate), ShouldBeTrue)
		})

		Convey("And non-finite values are rejected", func() {
			So(geo.Coordinate{Lat: math.NaN(), Lng: 0}.Validate(), ShouldNotBeNil)
			So(geo.Coordinate{Lat: 0, Lng: math.Inf(1)}.Validate(), ShouldNotBeNil)
		})
	})
}

func TestCoordinateDistance(t *testing.T) {
	Convey("Given two cities", t, func() {
		paris := geo.Coordinate{Lat: 48.8566, Lng: 2.3522}
		london := geo.Coordinate{Lat: 51.5074, Lng: -0.1278}

		Convey("Then the great-circle distance is about 344 km", func() {
			d := paris.Distance(london)
			So(d, ShouldBeGreaterThan, 330)
			So(d, ShouldBeLessThan, 360)
		})

		Convey("And distance to itself is zero", func() {
			So(paris.Distance(paris), ShouldAlmostEqual, 0, 1e-9)
		})

		Convey("And distance is symmetric", func() {
			So(paris.Distance(london), ShouldAlmostEqual, london.Distance(paris), 1e-9)
		})
	})
}

func TestCoordinateLerp(t *testing.T) {
	Convey("Given two endpoints", t, func() {
		a := geo.Coordinate{Lat: 10, Lng: 20}
		b := geo.Coordinate{Lat: 20, Lng: 40}

		Convey("Then t=0 yields the start and t=1 the end", func() {
			So(a.Lerp(b, 0), ShouldResemble, a)
			So(a.Lerp(b, 1), ShouldResemble, b)
		})

		Convey("And t=0.5 yields the midpoint", func() {
			mid := a.Lerp(b, 0.5)
			So(mid.Lat, ShouldAlmostEqual, 15)
			So(mid.Lng, ShouldAlmostEqual, 30)
		})
	})
}

func TestBBoxFromCoordinates(t *testing.T) {
	Convey("Given a set of coordinates", t, func() {
		coords := []geo.Coordinate{
			{Lat: 20, Lng: 100},
			{Lat: 40, Lng: 120},
			{Lat: 30, Lng: 110},
		}

		Convey("When computing the bounding box", func() {
			b, err := geo.BBoxFromCoordinates(coords)

			Convey("Then it encloses all points", func() {
				So(err, ShouldBeNil)
				So(b.West, ShouldEqual, 100)
				So(b.East, ShouldEqual, 120)
				So(b.South, ShouldEqual, 20)
				So(b.North, ShouldEqual, 40)
				So(b.Validate(), ShouldBeNil)
			})

			Convey("And the center is the midpoint", func() {
				c := b.Center()
				So(c.Lng, ShouldAlmostEqual, 110)
				So(c.Lat, ShouldAlmostEqual, 30)
			})
		})

		Convey("When all points are identical", func() {
			b, err := geo.BBoxFromCoordinates([]geo.Coordinate{
				{Lat: 35, Lng: 139},
				{Lat: 35, Lng: 139},
			})

			Convey("Then the box is widened to a usable span", func() {
				So(err, ShouldBeNil)
				So(b.Validate(), ShouldBeNil)
				So(b.Width(), ShouldBeGreaterThan, 0)
				So(b.Height(), ShouldBeGreaterThan, 0)
				So(b.Center().Lat, ShouldAlmostEqual, 35)
				So(b.Center().Lng, ShouldAlmostEqual, 139)
			})
		})

		Convey("When the input is empty", func() {
			_, err := geo.BBoxFromCoordinates(nil)

			Convey("Then it errors with ErrNoCoordinates", func() {
				So(errors.Is(err, geo.ErrNoCoordinates), ShouldBeTrue)
			})
		})
	})
}

func TestBoundingBoxPad(t *testing.T) {
	Convey("Given a bounding box", t, func() {
		b := geo.BoundingBox{West: 100, East: 120, South: 20, North: 40}

		Convey("When padding by 10%", func() {
			p := b.Pad(0.1)

			Convey("Then both axes grow symmetrically", func() {
				So(p.West, ShouldAlmostEqual, 98)
				So(p.East, ShouldAlmostEqual, 122)
				So(p.South, ShouldAlmostEqual, 18)
				So(p.North, ShouldAlmostEqual, 42)
				So(p.Center(), ShouldResemble, b.Center())
			})
		})
	})
}
