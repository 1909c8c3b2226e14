/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"sync"

	logging2 "github.com/op/go-logging"
	"github.com/pkg/profile"
	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ardenlab/chessknight/internal/config"
	"github.com/ardenlab/chessknight/internal/logging"
	"github.com/ardenlab/chessknight/internal/movegen"
	"github.com/ardenlab/chessknight/internal/position"
	"github.com/ardenlab/chessknight/internal/search"
	"github.com/ardenlab/chessknight/internal/util"
)

var out = message.NewPrinter(language.German)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "info", "standard log level\n(critical|error|warning|notice|info|debug)")
	searchlogLvl := flag.String("searchloglvl", "", "search log level\n(critical|error|warning|notice|info|debug)")
	logPath := flag.String("logpath", "./logs", "path where to write log files to")
	profileFlag := flag.Bool("profile", false, "write a CPU profile of the run to ./cpu.pprof")
	perftDepth := flag.Int("perft", 0, "runs perft on the start position up to the given depth\nuse -fen to provide a different position")
	depth := flag.Int("depth", 0, "search depth (0 falls back to the configured default)")
	fen := flag.String("fen", position.StartFen, "fen of the position to search or run perft on")
	fenFile := flag.String("fenfile", "", "file with one fen per line; searches every position concurrently,\nbounded by -workers goroutines (ignores -fen)")
	workers := flag.Int64("workers", int64(runtime.NumCPU()), "max number of positions searched concurrently when -fenfile is given\n(each search itself stays single-threaded)")
	listMoves := flag.Bool("moves", false, "lists the legal moves of the given position and exits")
	flag.Parse()

	if *profileFlag {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()

	if *logPath != "" {
		config.Settings.Log.LogPath = *logPath
	}
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	if lvl, found := config.LogLevels[*searchlogLvl]; found {
		config.SearchLogLevel = lvl
	}
	log := logging.GetLog()

	switch {
	case *listMoves:
		runMoves(*fen)
	case *perftDepth > 0:
		runPerft(*fen, *perftDepth)
	case *fenFile != "":
		runFenFile(*fenFile, *depth, *workers, log)
	default:
		runSearch(*fen, *depth)
	}
}

// runMoves prints the legal moves available in the given position.
func runMoves(fen string) {
	p, err := position.NewPositionFen(fen)
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid fen:", err)
		os.Exit(1)
	}
	mg := movegen.NewMoveGen()
	moves := mg.GenerateLegalMoves(p, movegen.GenAll)
	out.Println(p.String())
	out.Printf("%d legal moves: %s\n", moves.Len(), moves.StringUci())
}

// runPerft counts the leaf nodes reachable from fen for every depth from 1
// up to maxDepth, printing a line per depth as it goes.
func runPerft(fen string, maxDepth int) {
	var perftTest movegen.Perft
	for d := 1; d <= maxDepth; d++ {
		perftTest.StartPerft(fen, d)
		out.Printf("Perft depth %d: nodes=%d captures=%d enpassant=%d castles=%d promotions=%d checks=%d checkmates=%d\n",
			d, perftTest.Nodes, perftTest.CaptureCounter, perftTest.EnpassantCounter,
			perftTest.CastleCounter, perftTest.PromotionCounter, perftTest.CheckCounter, perftTest.CheckMateCounter)
	}
}

// runSearch searches a single position to depth and prints the result.
func runSearch(fen string, depth int) {
	p, err := position.NewPositionFen(fen)
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid fen:", err)
		os.Exit(1)
	}
	s := search.NewSearch()
	result := s.StartSearch(*p, depth)
	out.Println(p.String())
	out.Println(result.String())
	out.Println("nps:", util.Nps(result.Nodes, result.Time))
}

// runFenFile reads one fen per line from path and searches every one of
// them to depth, fanning the independent searches out across goroutines
// bounded by maxWorkers via a weighted semaphore. Each search owns its own
// Search and Position, so this is concurrency across searches, not within
// one - the search algorithm itself remains single-threaded.
func runFenFile(path string, depth int, maxWorkers int64, log *logging2.Logger) {
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer f.Close()

	var fens []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		fens = append(fens, line)
	}

	if maxWorkers < 1 {
		maxWorkers = 1
	}
	sem := semaphore.NewWeighted(maxWorkers)
	ctx := context.Background()
	results := make([]string, len(fens))

	var wg sync.WaitGroup
	for i, fen := range fens {
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Errorf("could not acquire search slot: %v", err)
			continue
		}
		wg.Add(1)
		go func(i int, fen string) {
			defer wg.Done()
			defer sem.Release(1)
			p, err := position.NewPositionFen(fen)
			if err != nil {
				results[i] = fmt.Sprintf("%s: invalid fen: %v", fen, err)
				return
			}
			s := search.NewSearch()
			result := s.StartSearch(*p, depth)
			results[i] = fmt.Sprintf("%s -> %s", fen, result.String())
		}(i, fen)
	}
	wg.Wait()

	for _, r := range results {
		out.Println(r)
	}
}
