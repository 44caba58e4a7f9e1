package systems

import (
	"github.com/cozypark/cozypark/components"
	"github.com/cozypark/cozypark/session"
	"github.com/cozypark/cozypark/shared/netcomponents"
	"github.com/cozypark/cozypark/shared/parkmap"
	"github.com/cozypark/cozypark/shared/protocol"
	"github.com/yohamta/donburi"
)

// seatFixture is a two-seat fixture whose seating is changed optimistically
// and then sent to the server.
type seatFixture struct {
	name    string
	area    func(l *parkmap.Layout) parkmap.Rect
	seats   func(e *donburi.Entry) *netcomponents.Seats
	request func(seats netcomponents.Seats) protocol.Outbound
}

var (
	diningFixture = seatFixture{
		name: "dining",
		area: func(l *parkmap.Layout) parkmap.Rect { return l.Dining },
		seats: func(e *donburi.Entry) *netcomponents.Seats {
			return &netcomponents.NetDiningState.Get(e).Seats
		},
		request: protocol.DiningRequest,
	}

	benchFixture = seatFixture{
		name: "bench",
		area: func(l *parkmap.Layout) parkmap.Rect { return l.Bench },
		seats: func(e *donburi.Entry) *netcomponents.Seats {
			return &netcomponents.NetBenchState.Get(e).Seats
		},
		request: protocol.BenchRequest,
	}
)

// ClickDining sits down at or stands up from the dining table.
func ClickDining(s *session.Session, clickX float64) {
	diningFixture.click(s, clickX)
}

// ClickBench sits down on or stands up from the bench.
func ClickBench(s *session.Session, clickX float64) {
	benchFixture.click(s, clickX)
}

// UpdateDining unseats a walking player who has left the table.
func UpdateDining(s *session.Session) {
	diningFixture.leaveIfAway(s)
}

// UpdateBench unseats a walking player who has left the bench.
func UpdateBench(s *session.Session) {
	benchFixture.leaveIfAway(s)
}

func (f seatFixture) click(s *session.Session, clickX float64) {
	seats := f.seats(s.Fixtures())
	next, changed := claimSeat(*seats, s.LocalID(), clickX, f.area(s.Layout))
	if !changed {
		s.Log.Debugw("[fixtures] no free seat", "fixture", f.name)
		return
	}
	f.apply(s, seats, next)
}

func (f seatFixture) leaveIfAway(s *session.Session) {
	if !walking(s) {
		return
	}
	seats := f.seats(s.Fixtures())
	if !seats.Holds(s.LocalID()) || localWithin(s, f.area(s.Layout)) {
		return
	}
	f.apply(s, seats, seats.Vacate(s.LocalID()))
}

func (f seatFixture) apply(s *session.Session, seats *netcomponents.Seats, next netcomponents.Seats) {
	*seats = next
	markFixturesDirty(s)
	s.Send(f.request(next))
}

// claimSeat applies a click by id to a two-seat fixture. A seated player
// stands up; otherwise the seat on the clicked side is taken, falling back to
// the other seat when it is free.
func claimSeat(seats netcomponents.Seats, id string, clickX float64, area parkmap.Rect) (netcomponents.Seats, bool) {
	if seats.Holds(id) {
		return seats.Vacate(id), true
	}

	preferLeft := clickX < area.CenterX()
	switch {
	case preferLeft && seats.Left == "":
		seats.Left = id
	case !preferLeft && seats.Right == "":
		seats.Right = id
	case seats.Left == "":
		seats.Left = id
	case seats.Right == "":
		seats.Right = id
	default:
		return seats, false
	}
	return seats, true
}

func markFixturesDirty(s *session.Session) {
	components.FixtureRevision.Get(s.Fixtures()).Revision++
}
