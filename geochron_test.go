package geochron_test

import (
	"context"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	geochron "github.com/mkarimian/geochron"
)

// The walkthrough a host rendering surface performs: seed a source, activate
// an author, scrub, and pull state.
func TestEngineWalkthrough(t *testing.T) {
	Convey("Given an engine seeded with one author", t, func() {
		ctx := context.Background()

		author := geochron.Author{
			ID:         "basho",
			Name:       "Matsuo Basho",
			ThemeColor: "#7a5c3e",
			Works: []geochron.Work{{
				ID:    "oku",
				Title: "The Narrow Road",
				Year:  1689,
				Routes: []geochron.Route{
					{
						ID:            "edo-nikko",
						Year:          1689,
						StartLocation: geochron.Location{Name: "Edo", Coordinates: geochron.Coordinate{Lat: 35.68, Lng: 139.76}},
						EndLocation:   geochron.Location{Name: "Nikko", Coordinates: geochron.Coordinate{Lat: 36.75, Lng: 139.60}},
					},
					{
						ID:            "nikko-sendai",
						Year:          1689,
						StartLocation: geochron.Location{Name: "Nikko", Coordinates: geochron.Coordinate{Lat: 36.75, Lng: 139.60}},
						EndLocation:   geochron.Location{Name: "Sendai", Coordinates: geochron.Coordinate{Lat: 38.27, Lng: 140.87}},
						CollectionInfo: geochron.CollectionInfo{
							HasCollection: true,
							Meta:          &geochron.CollectionMeta{Title: "haiku drafts", Date: "1689", Location: "Sendai"},
						},
					},
				},
			}},
		}

		engine := geochron.New(
			geochron.NewStaticSource(author),
			geochron.WithConfig(geochron.DefaultConfig()),
			geochron.WithViewport(1024, 768),
		)

		Convey("When the author becomes active", func() {
			So(engine.SetActiveAuthor(ctx, "basho"), ShouldBeNil)

			Convey("Then the renderer can pull the timeline", func() {
				events := engine.ActiveTimeline()
				So(events, ShouldHaveLength, 7)
				So(events[0].Type, ShouldEqual, geochron.EventLineStart)
				So(events[len(events)-1].Type, ShouldEqual, geochron.EventRippleTrigger)
			})

			Convey("And scrubbing to mid-growth is deterministic", func() {
				engine.Playback().Seek(ctx, 1500*time.Millisecond)
				So(engine.Animation().StateOf("edo-nikko"), ShouldEqual, geochron.StateGrowing)
				p1 := engine.Animation().ProgressOf("edo-nikko")

				engine.Playback().Seek(ctx, 4*time.Second)
				engine.Playback().Seek(ctx, 1500*time.Millisecond)
				So(engine.Animation().ProgressOf("edo-nikko"), ShouldEqual, p1)
			})

			Convey("And the camera frames the journey region", func() {
				engine.Playback().Advance(ctx, 2*time.Second)
				state := engine.Camera().State()
				So(state.Center.Lng, ShouldBeBetween, 139, 141)
				So(state.Center.Lat, ShouldBeBetween, 35, 39)
				So(state.Zoom, ShouldBeGreaterThan, 0)
			})

			Convey("And closing the engine tears everything down", func() {
				engine.Close(ctx)
				So(engine.ActiveAuthor(), ShouldBeNil)
				So(engine.Animation().StateOf("edo-nikko"), ShouldEqual, geochron.StateHidden)
			})
		})
	})
}
