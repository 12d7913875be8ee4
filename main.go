/* main.go
 * The "main" method for running the trial manager. For details see `readme.md`
 * Usage: go run . -db="<database name>" -addr="<listen address>"
 */

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	api "trial-manager/api/api"
	"trial-manager/api/shared"
	"trial-manager/web"

	"github.com/joho/godotenv"
)

const sampleSchedule = "2025-06-01=Games 1 (GB)/\"J. Doe\"/feo,Rally Starter/Patty Brown,Rally Starter/Sandy Martinez;2025-06-02=Obedience 1/Burt Smith"

func main() {
	err := godotenv.Load()

	//Flags
	dbPtr := flag.String("db", "trial_manager", "Database name to store trials in")
	addrPtr := flag.String("addr", ":8080", "Listen address for the HTTP server")
	demoPtr := flag.String("demo", "false", "Walk a sample trial through the api before serving: takes true or false as argument")
	schedulePtr := flag.String("schedule", sampleSchedule, "Schedule spec for the demo trial: date=class/judge[/feo],...;date=...")

	flag.Parse()

	if err != nil {
		log.Fatal("Error loading .env file")
	}

	api, err := api.NewAPI(*dbPtr, os.Getenv("MONGO_URI"))
	if err != nil {
		log.Fatalf("failed to initialize API: %v", err)
	}
	defer func() {
		if err = api.Store.GetClient().Disconnect(context.TODO()); err != nil {
			panic(err)
		}
	}()

	demo, err := convertStrToBool(*demoPtr)
	if err != nil {
		log.Fatalf("invalid \"demo\" flag: %v", err)
	}
	if demo {
		ApiTesting(api, *schedulePtr)
	}

	if err := web.Start(web.Config{Addr: *addrPtr, API: api}); err != nil {
		log.Fatalf("web server stopped: %v", err)
	}
}

// This provides a sample of how the api functions work and how they can be incorporated into a caller
func ApiTesting(api *api.API, schedule string) {
	user := shared.User{UserId: "123", Username: "123x"}

	fmt.Println("Parsing demo schedule")
	days, err := parseScheduleSpec(schedule)
	if err != nil {
		fmt.Println(err)
		return
	}

	trial := shared.Trial{
		ClubName:  "Riverside K9",
		Secretary: "A. Lee",
		Status:    shared.StatusDraft,
		FeeConfiguration: shared.FeeConfiguration{
			Regular:          25,
			FEO:              15,
			JuniorHandler:    12,
			JuniorHandlerFEO: 8,
		},
		Days: days,
	}

	fmt.Println("Creating trial")
	trialId, violations, err := api.CreateTrial(user, trial)
	if err != nil {
		fmt.Println(err)
		return
	}
	if len(violations) > 0 {
		fmt.Println("Trial was rejected:")
		for _, violation := range violations {
			fmt.Println(" -", violation)
		}
		return
	}
	fmt.Println("Created trial", trialId)

	fmt.Println("Reconstituting trial")
	stored, err := api.GetTrial(trialId, user.UserId)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, day := range stored.Days {
		fmt.Printf("Day %d (%s): %d classes\n", day.DayNumber, day.Date, len(day.Classes))
	}

	fmt.Println("Publishing trial")
	stored.Status = shared.StatusPublished
	violations, err = api.ReplaceTrial(trialId, user, *stored)
	if err != nil {
		fmt.Println(err)
		return
	}
	if len(violations) > 0 {
		fmt.Println("Replacement was rejected:", violations)
		return
	}

	fmt.Println("Listing trials")
	summaries, err := api.ListTrials(user)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, summary := range summaries {
		fmt.Printf("%s: %s (%s)\n", summary.Id, summary.ClubName, summary.Status)
	}

	fmt.Println("Suggesting judges")
	judges, err := api.SuggestJudges("doe")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(judges)
}
