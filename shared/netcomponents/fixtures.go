package netcomponents

import (
	"slices"

	"github.com/yohamta/donburi"
)

// Seats is a two-seat fixture. An empty string is an empty seat.
type Seats struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

func (s Seats) Holds(id string) bool {
	return id != "" && (s.Left == id || s.Right == id)
}

func (s Seats) Full() bool {
	return s.Left != "" && s.Right != ""
}

// Vacate clears every seat held by id.
func (s Seats) Vacate(id string) Seats {
	if s.Left == id {
		s.Left = ""
	}
	if s.Right == id {
		s.Right = ""
	}
	return s
}

type DiningStateData struct {
	Seats
}

type BenchStateData struct {
	Seats
	ShowFireworks bool `json:"showFireworks"`
}

type FerrisStateData struct {
	Frame   int      `json:"frame"`
	Players []string `json:"players"`
}

func (f FerrisStateData) Has(id string) bool {
	return id != "" && slices.Contains(f.Players, id)
}

func (f FerrisStateData) Clone() FerrisStateData {
	f.Players = slices.Clone(f.Players)
	if f.Players == nil {
		f.Players = []string{}
	}
	return f
}

var (
	NetDiningState = donburi.NewComponentType[DiningStateData]()
	NetBenchState  = donburi.NewComponentType[BenchStateData]()
	NetFerrisState = donburi.NewComponentType[FerrisStateData]()
)
