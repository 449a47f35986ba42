package contract

import "github.com/alexanderramin/repstreak/internal/app"

type StatsResponse = app.StatsResponse
