package camera_test

import (
	"context"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/mkarimian/geochron/internal/domain/camera"
	"github.com/mkarimian/geochron/internal/domain/geo"
)

func TestSmartFlyTo(t *testing.T) {
	Convey("Given an 800x600 viewport", t, func() {
		c := camera.NewController(800, 600)
		bbox := geo.BoundingBox{West: 100, East: 120, South: 20, North: 40}

		Convey("When computing the smart fly-to with 10% padding", func() {
			params := c.SmartFlyTo(bbox, 0.1, time.Second)

			Convey("Then the center is the bbox midpoint", func() {
				So(params.Center.Lng, ShouldAlmostEqual, 110)
				So(params.Center.Lat, ShouldAlmostEqual, 30)
			})

			Convey("And the zoom fits the limiting axis", func() {
				// available 640x480 over a 20x20 degree box: scaleX=32,
				// scaleY=24, min is 24, divided by the base scale of 4.
				So(params.Zoom, ShouldAlmostEqual, 6)
			})

			Convey("And the rotation recenters the globe on the midpoint", func() {
				So(params.Rotation[0], ShouldAlmostEqual, -110)
				So(params.Rotation[1], ShouldAlmostEqual, -30)
				So(params.Rotation[2], ShouldAlmostEqual, 0)
			})

			Convey("And the duration and easing are populated", func() {
				So(params.Duration, ShouldEqual, time.Second)
				So(params.Easing, ShouldNotBeNil)
			})
		})

		Convey("When the bbox gets wider but not taller", func() {
			base := c.SmartFlyTo(bbox, 0.1, time.Second)
			wider := c.SmartFlyTo(geo.BoundingBox{West: 60, East: 160, South: 20, North: 40}, 0.1, time.Second)

			Convey("Then the zoom never increases beyond what height allows", func() {
				So(wider.Zoom, ShouldBeLessThanOrEqualTo, base.Zoom)
			})
		})

		Convey("When the bbox is tiny", func() {
			params := c.SmartFlyTo(geo.BoundingBox{West: 100, East: 100.001, South: 20, North: 20.001}, 0.1, time.Second)

			Convey("Then the zoom clamps to the maximum", func() {
				So(params.Zoom, ShouldEqual, 10.0)
			})
		})

		Convey("When the bbox spans the whole world", func() {
			params := c.SmartFlyTo(geo.BoundingBox{West: -180, East: 180, South: -90, North: 90}, 0.1, time.Second)

			Convey("Then the zoom clamps to the minimum", func() {
				So(params.Zoom, ShouldEqual, 0.5)
			})
		})

		Convey("When the bbox is zero-area", func() {
			params := c.SmartFlyTo(geo.BoundingBox{West: 100, East: 100, South: 20, North: 20}, 0.1, time.Second)

			Convey("Then a minimum span is substituted instead of failing", func() {
				So(params.Zoom, ShouldBeGreaterThan, 0)
				So(params.Center.Lng, ShouldAlmostEqual, 100)
				So(params.Center.Lat, ShouldAlmostEqual, 20)
			})
		})
	})
}

func TestAuthorBBox(t *testing.T) {
	Convey("Given a camera controller", t, func() {
		c := camera.NewController(800, 600)

		Convey("When computing an author bbox", func() {
			bbox, err := c.AuthorBBox([]geo.Coordinate{
				{Lat: 20, Lng: 100},
				{Lat: 40, Lng: 120},
			})

			Convey("Then the raw extent is padded by the default fraction", func() {
				So(err, ShouldBeNil)
				So(bbox.West, ShouldAlmostEqual, 98)
				So(bbox.East, ShouldAlmostEqual, 122)
				So(bbox.South, ShouldAlmostEqual, 18)
				So(bbox.North, ShouldAlmostEqual, 42)
			})
		})

		Convey("When there are no coordinates", func() {
			_, err := c.AuthorBBox(nil)

			Convey("Then it surfaces the geometry error", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}

func TestFlyToLifecycle(t *testing.T) {
	Convey("Given a controller with linear easing", t, func() {
		ctx := context.Background()
		c := camera.NewController(800, 600, camera.WithEasing(camera.Linear))
		target := camera.FlyToParams{
			Center:   geo.Coordinate{Lat: 30, Lng: 110},
			Zoom:     6,
			Duration: time.Second,
		}

		Convey("When stepping a flight to completion", func() {
			var updates []camera.State
			flight := c.FlyTo(ctx, target, func(s camera.State) {
				updates = append(updates, s)
			})

			c.Step(500 * time.Millisecond)
			midway := c.State()
			c.Step(500 * time.Millisecond)

			Convey("Then intermediate states are interpolated", func() {
				So(midway.Center.Lng, ShouldAlmostEqual, 55)
				So(midway.Center.Lat, ShouldAlmostEqual, 15)
				So(midway.Zoom, ShouldAlmostEqual, 3.5)
			})

			Convey("And the flight resolves exactly on the target", func() {
				So(c.State().Center, ShouldResemble, target.Center)
				So(c.State().Zoom, ShouldEqual, 6)
				So(c.InFlight(), ShouldBeFalse)
				select {
				case <-flight.Done():
					So(flight.Superseded(), ShouldBeFalse)
				default:
					t.Fatal("flight did not resolve")
				}
			})

			Convey("And the update callback saw every tick", func() {
				So(updates, ShouldHaveLength, 2)
			})
		})

		Convey("When a second fly-to starts before the first resolves", func() {
			first := c.FlyTo(ctx, target, nil)
			c.Step(200 * time.Millisecond)
			second := c.FlyTo(ctx, camera.FlyToParams{
				Center:   geo.Coordinate{Lat: -10, Lng: 50},
				Zoom:     2,
				Duration: time.Second,
			}, nil)
			c.Step(time.Second)

			Convey("Then only the final target is reached", func() {
				So(c.State().Center.Lng, ShouldAlmostEqual, 50)
				So(c.State().Center.Lat, ShouldAlmostEqual, -10)
				So(c.State().Zoom, ShouldAlmostEqual, 2)
			})

			Convey("And the superseded flight still resolves", func() {
				select {
				case <-first.Done():
					So(first.Superseded(), ShouldBeTrue)
				default:
					t.Fatal("superseded flight left hanging")
				}
				select {
				case <-second.Done():
					So(second.Superseded(), ShouldBeFalse)
				default:
					t.Fatal("winning flight did not resolve")
				}
			})
		})

		Convey("When cancelling an in-flight transition", func() {
			flight := c.FlyTo(ctx, target, nil)
			c.Step(100 * time.Millisecond)
			before := c.State()
			c.CancelFlight(ctx)
			c.Step(time.Second)

			Convey("Then the camera stops where it was", func() {
				So(c.State(), ShouldResemble, before)
				So(c.InFlight(), ShouldBeFalse)
				select {
				case <-flight.Done():
					So(flight.Superseded(), ShouldBeTrue)
				default:
					t.Fatal("cancelled flight left hanging")
				}
			})
		})

		Convey("When stepping with no flight", func() {
			before := c.State()
			c.Step(time.Second)

			Convey("Then nothing changes", func() {
				So(c.State(), ShouldResemble, before)
			})
		})
	})
}

func TestFlyToWrappers(t *testing.T) {
	Convey("Given a camera mid-scene", t, func() {
		ctx := context.Background()
		c := camera.NewController(800, 600, camera.WithEasing(camera.Linear))
		c.FlyTo(ctx, camera.FlyToParams{
			Center:   geo.Coordinate{Lat: 30, Lng: 110},
			Zoom:     6,
			Duration: time.Millisecond,
		}, nil)
		c.Step(time.Millisecond)

		Convey("When zooming", func() {
			c.ZoomTo(ctx, 3, nil)
			c.Step(time.Second)

			Convey("Then the center is held constant", func() {
				So(c.State().Zoom, ShouldAlmostEqual, 3)
				So(c.State().Center.Lng, ShouldAlmostEqual, 110)
				So(c.State().Center.Lat, ShouldAlmostEqual, 30)
			})
		})

		Convey("When panning", func() {
			c.PanTo(ctx, geo.Coordinate{Lat: 10, Lng: 20}, nil)
			c.Step(time.Second)

			Convey("Then the zoom is held constant", func() {
				So(c.State().Zoom, ShouldAlmostEqual, 6)
				So(c.State().Center.Lng, ShouldAlmostEqual, 20)
				So(c.State().Center.Lat, ShouldAlmostEqual, 10)
			})
		})

		Convey("When resetting", func() {
			c.Reset(ctx, nil)
			c.Step(time.Second)

			Convey("Then the camera returns to the initial framing", func() {
				So(c.State().Zoom, ShouldAlmostEqual, 1)
				So(c.State().Center, ShouldResemble, geo.Coordinate{})
			})
		})
	})
}

func TestEasing(t *testing.T) {
	Convey("Given the easing curves", t, func() {
		Convey("Then both are fixed at the endpoints", func() {
			So(camera.Linear(0), ShouldEqual, 0)
			So(camera.Linear(1), ShouldEqual, 1)
			So(camera.EaseInOutCubic(0), ShouldAlmostEqual, 0)
			So(camera.EaseInOutCubic(1), ShouldAlmostEqual, 1)
		})

		Convey("And cubic in-out is symmetric around the midpoint", func() {
			So(camera.EaseInOutCubic(0.5), ShouldAlmostEqual, 0.5)
			So(camera.EaseInOutCubic(0.25)+camera.EaseInOutCubic(0.75), ShouldAlmostEqual, 1)
		})

		Convey("And cubic in-out starts slower than linear", func() {
			So(camera.EaseInOutCubic(0.1), ShouldBeLessThan, 0.1)
		})
	})
}
