package parsers

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Established log formats. The header is emitted by the application's log4j layout:
//
//	01 Jan 2024 00:00:01:000  INFO  [http-nio-8080-exec-1] (SpringTimerFilter.java:58) - message
const (
	headerExpr  = `(?P<timestamp>\d{2} \w{3} \d{4} \d{2}:\d{2}:\d{2}:\d{3})\s+(?P<level>\w*)\s+(?P<thread>\[\S*\]) \((?P<class>\w*)\.\w+:(?P<line>\d+)\) - (?P<message>.*)`
	timingExpr  = `Action \[(?P<method>\w*):(?P<path>[/.\w]*)\] took \((?P<duration>\d+)\) ms`
	versionExpr = `\[version=(?P<version>\S+)\]`

	// timestampLayout is dd MMM yyyy HH:mm:ss.SSS; the log writes ':' before the millis,
	// which is rewritten to '.' before parsing.
	timestampLayout = "02 Jan 2006 15:04:05.000"
)

// Patterns holds the compiled log formats. Build it once with NewPatterns and share it.
type Patterns struct {
	header  *regexp.Regexp
	timing  *regexp.Regexp
	version *regexp.Regexp

	headerIdx  headerGroups
	timingIdx  timingGroups
	versionIdx int

	location *time.Location
}

type headerGroups struct {
	timestamp, level, thread, class, line, message int
}

type timingGroups struct {
	method, path, duration int
}

// NewPatterns compiles the log formats. Timestamps are interpreted in loc; nil means time.Local.
func NewPatterns(loc *time.Location) *Patterns {
	if loc == nil {
		loc = time.Local
	}
	header := regexp.MustCompile(headerExpr)
	timing := regexp.MustCompile(timingExpr)
	version := regexp.MustCompile(versionExpr)
	return &Patterns{
		header:  header,
		timing:  timing,
		version: version,
		headerIdx: headerGroups{
			timestamp: header.SubexpIndex("timestamp"),
			level:     header.SubexpIndex("level"),
			thread:    header.SubexpIndex("thread"),
			class:     header.SubexpIndex("class"),
			line:      header.SubexpIndex("line"),
			message:   header.SubexpIndex("message"),
		},
		timingIdx: timingGroups{
			method:   timing.SubexpIndex("method"),
			path:     timing.SubexpIndex("path"),
			duration: timing.SubexpIndex("duration"),
		},
		versionIdx: version.SubexpIndex("version"),
		location:   loc,
	}
}

// LoadLocation resolves a configured time zone name. Empty and "Local" mean the process zone.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid time zone %q: %w", name, err)
	}
	return loc, nil
}

// headerMatch is a header line bound to named fields.
type headerMatch struct {
	timestamp string
	level     string
	thread    string
	className string
	line      string
	message   string
}

func (p *Patterns) matchHeader(line string) (headerMatch, bool) {
	m := p.header.FindStringSubmatch(line)
	if m == nil {
		return headerMatch{}, false
	}
	return headerMatch{
		timestamp: m[p.headerIdx.timestamp],
		level:     m[p.headerIdx.level],
		thread:    m[p.headerIdx.thread],
		className: m[p.headerIdx.class],
		line:      m[p.headerIdx.line],
		message:   m[p.headerIdx.message],
	}, true
}

// timingMatch is a timing entry bound to named fields.
type timingMatch struct {
	method   string
	path     string
	duration string
}

func (p *Patterns) matchTiming(message string) (timingMatch, bool) {
	m := p.timing.FindStringSubmatch(message)
	if m == nil {
		return timingMatch{}, false
	}
	return timingMatch{
		method:   m[p.timingIdx.method],
		path:     m[p.timingIdx.path],
		duration: m[p.timingIdx.duration],
	}, true
}

func (p *Patterns) matchVersion(message string) (string, bool) {
	m := p.version.FindStringSubmatch(message)
	if m == nil {
		return "", false
	}
	return m[p.versionIdx], true
}

// time.Parse matches month names case-insensitively; the log format only ever writes these.
var monthTokens = map[string]bool{
	"Jan": true, "Feb": true, "Mar": true, "Apr": true, "May": true, "Jun": true,
	"Jul": true, "Aug": true, "Sep": true, "Oct": true, "Nov": true, "Dec": true,
}

// parseTimestamp parses "dd MMM yyyy HH:mm:ss:SSS" strictly in the configured location.
func (p *Patterns) parseTimestamp(value string) (time.Time, error) {
	if len(value) < 6 || !monthTokens[value[3:6]] {
		return time.Time{}, fmt.Errorf("%w: %q", ErrTimestampFormat, value)
	}
	idx := strings.LastIndexByte(value, ':')
	if idx < 0 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrTimestampFormat, value)
	}
	normalized := value[:idx] + "." + value[idx+1:]
	t, err := time.ParseInLocation(timestampLayout, normalized, p.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %w", ErrTimestampFormat, value, err)
	}
	return t, nil
}
