package provider

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/boorusan-cli/boorusan/booru"
)

// fakeProvider is a minimal in-memory adapter for registry tests.
type fakeProvider struct {
	name    string
	display string
	status  booru.Status
	panics  bool
}

func (f *fakeProvider) Name() string        { return f.name }
func (f *fakeProvider) DisplayName() string { return f.display }
func (f *fakeProvider) BaseURL() string     { return "https://example.com" }
func (f *fakeProvider) RequiresAuth() bool  { return false }

func (f *fakeProvider) Posts(booru.PostQuery) ([]*booru.Post, error)          { return nil, nil }
func (f *fakeProvider) Tags(booru.TagQuery) ([]*booru.Tag, error)             { return nil, nil }
func (f *fakeProvider) Comments(booru.CommentQuery) ([]*booru.Comment, error) { return nil, nil }
func (f *fakeProvider) Autocomplete(string) ([]string, error)                 { return nil, nil }
func (f *fakeProvider) SetCookieFile(string) error                            { return nil }

func (f *fakeProvider) Status() booru.Status {
	if f.panics {
		panic("status probe exploded")
	}
	return f.status
}

func TestRegistry(t *testing.T) {
	Convey("Given a registry", t, func() {
		r := NewRegistry()
		r.Register(&fakeProvider{name: "a", display: "Alpha"})
		r.Register(&fakeProvider{name: "b", display: "Beta"})

		Convey("Registration order is preserved", func() {
			So(r.Names(), ShouldResemble, []string{"a", "b"})
			So(r.DisplayNames(), ShouldResemble, []string{"Alpha", "Beta"})
			So(r.Len(), ShouldEqual, 2)
		})

		Convey("Duplicate names keep the first registration", func() {
			first, _ := r.Get("a")
			r.Register(&fakeProvider{name: "a", display: "Impostor"})

			So(r.Len(), ShouldEqual, 2)
			current, ok := r.Get("a")
			So(ok, ShouldBeTrue)
			So(current, ShouldEqual, first)
		})

		Convey("Selecting an unknown name leaves the selection unchanged", func() {
			So(r.Select("a"), ShouldBeTrue)
			So(r.Select("nope"), ShouldBeFalse)

			current, ok := r.Current()
			So(ok, ShouldBeTrue)
			So(current.Name(), ShouldEqual, "a")
		})

		Convey("An empty registry has no current provider", func() {
			_, ok := NewRegistry().Current()
			So(ok, ShouldBeFalse)
		})
	})
}

func TestCheckAll(t *testing.T) {
	Convey("Given providers with mixed health", t, func() {
		r := NewRegistry()
		r.Register(&fakeProvider{name: "up", status: booru.StatusOK("fine")})
		r.Register(&fakeProvider{name: "down", status: booru.StatusFailed("broken")})
		r.Register(&fakeProvider{name: "panicky", panics: true})

		statuses := r.CheckAll()

		Convey("Every registered provider gets exactly one status", func() {
			So(statuses, ShouldHaveLength, 3)
			So(statuses["up"].OK, ShouldBeTrue)
			So(statuses["down"].OK, ShouldBeFalse)
			So(statuses["down"].Message, ShouldEqual, "broken")
		})

		Convey("A panicking probe is folded into a failed status", func() {
			So(statuses["panicky"].OK, ShouldBeFalse)
			So(statuses["panicky"].Message, ShouldNotBeEmpty)
		})
	})
}
