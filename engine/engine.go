package engine

import (
	"log"
	"time"

	"github.com/auxroom/auxroom-api/room"
	"github.com/auxroom/auxroom-api/util"
)

const (
	cycle_period_save_logs = time.Second * 10
	cycle_period_occupancy = time.Minute * 5
)

var (
	cycle_period         = time.Second * 10
	last_cycle_save_logs *time.Time
	last_cycle_occupancy *time.Time
)

func Run(hub *room.Hub) {
	for {
		cycle(hub)

		time.Sleep(cycle_period)
	}
}

func shouldDoCycle(last *time.Time, period time.Duration) bool {
	return last == nil || time.Since(*last) >= period
}

func cycle(hub *room.Hub) {
	now := time.Now()

	if shouldDoCycle(last_cycle_save_logs, cycle_period_save_logs) {
		util.WriteChannelLogsToFile()
		last_cycle_save_logs = &now
	}

	if shouldDoCycle(last_cycle_occupancy, cycle_period_occupancy) {
		log.Printf("occupancy: %d rooms, %d sessions, %d log entries pending",
			hub.RoomCount(), hub.SessionCount(), util.GetLogChannelSize())
		last_cycle_occupancy = &now
	}
}
