package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

type LogStats struct {
	TotalRequests   int
	StatusClasses   map[string]int
	NotFound        int
	TotalErrors     int
	Panics          int
	RequestsByPath  map[string]int
	FailedOperation map[string]int
}

// logLine holds the fields written by utils.LogRequest and utils.LogFailure
type logLine struct {
	Level     string `json:"level"`
	Message   string `json:"message"`
	Method    string `json:"method"`
	Path      string `json:"path"`
	Status    int    `json:"status"`
	Operation string `json:"operation"`
}

func main() {
	logDir := flag.String("dir", "./logs", "directory holding the daily log files")
	day := flag.String("date", time.Now().Format("2006-01-02"), "day to analyze (YYYY-MM-DD)")
	flag.Parse()

	stats := &LogStats{
		StatusClasses:   make(map[string]int),
		RequestsByPath:  make(map[string]int),
		FailedOperation: make(map[string]int),
	}

	analyzeErrorLogs(filepath.Join(*logDir, fmt.Sprintf("error-%s.log", *day)), stats)
	analyzeInfoLogs(filepath.Join(*logDir, fmt.Sprintf("info-%s.log", *day)), stats)

	printReport(*day, stats)
}

func readLines(logFile string, fn func(logLine)) {
	file, err := os.Open(logFile)
	if err != nil {
		fmt.Printf("Error opening log file %s: %v\n", logFile, err)
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		var line logLine
		if err := json.Unmarshal(scanner.Bytes(), &line); err != nil {
			continue
		}
		fn(line)
	}
}

func analyzeErrorLogs(logFile string, stats *LogStats) {
	readLines(logFile, func(line logLine) {
		if line.Level != "error" {
			return
		}
		stats.TotalErrors++
		if line.Message == "panic recovered" {
			stats.Panics++
		}
		if line.Operation != "" {
			stats.FailedOperation[line.Operation]++
		}
	})
}

func analyzeInfoLogs(logFile string, stats *LogStats) {
	readLines(logFile, func(line logLine) {
		if line.Message != "request" {
			return
		}
		stats.TotalRequests++
		stats.StatusClasses[fmt.Sprintf("%dxx", line.Status/100)]++
		if line.Status == 404 {
			stats.NotFound++
		}
		stats.RequestsByPath[line.Method+" "+line.Path]++
	})
}

func printReport(day string, stats *LogStats) {
	fmt.Println("\n=== Log Analysis Report ===")
	fmt.Println("Day:", day)
	fmt.Println("Generated:", time.Now().Format("2006-01-02 15:04:05"))

	fmt.Println("\n1. Request Statistics:")
	fmt.Printf("   Total Requests: %d\n", stats.TotalRequests)
	for _, class := range []string{"2xx", "3xx", "4xx", "5xx"} {
		fmt.Printf("   %s: %d\n", class, stats.StatusClasses[class])
	}
	fmt.Printf("   Not Found: %d\n", stats.NotFound)

	fmt.Println("\n2. Error Statistics:")
	fmt.Printf("   Total Errors: %d\n", stats.TotalErrors)
	fmt.Printf("   Recovered Panics: %d\n", stats.Panics)

	fmt.Println("\n3. Busiest Routes:")
	printTop(stats.RequestsByPath, 5, "requests")

	fmt.Println("\n4. Most Failing Operations:")
	printTop(stats.FailedOperation, 5, "failures")
}

func printTop(counts map[string]int, limit int, unit string) {
	type entry struct {
		key   string
		count int
	}

	var entries []entry
	for k, n := range counts {
		entries = append(entries, entry{k, n})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count == entries[j].count {
			return entries[i].key < entries[j].key
		}
		return entries[i].count > entries[j].count
	})

	for i, e := range entries {
		if i >= limit {
			break
		}
		fmt.Printf("   %s: %d %s\n", e.key, e.count, unit)
	}
}
