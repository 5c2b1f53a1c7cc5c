package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/poiesic/datablock"
)

// LoadFile parses an ini-style parameter file into a fresh DataBlock.
// The caller owns the returned block and must close it.
func LoadFile(path string) (*datablock.DataBlock, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f, path)
}

// Load parses parameter text into a fresh DataBlock. Sections are
// "[section]" headers; entries are "name = value" lines. Values are typed by
// shape: true/false, integers, floats, complex numbers (1+2i), quoted
// strings, whitespace-separated numeric lists, and bare text as a fallback.
func Load(r io.Reader, source string) (*datablock.DataBlock, error) {
	block := datablock.New()
	if err := loadInto(block, r, source); err != nil {
		block.Close()
		return nil, err
	}
	return block, nil
}

func loadInto(block *datablock.DataBlock, r io.Reader, source string) error {
	scanner := bufio.NewScanner(r)
	section := ""
	lineno := 0

	for scanner.Scan() {
		lineno++
		line := stripComment(scanner.Text())
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "[") {
			if !strings.HasSuffix(line, "]") {
				return fmt.Errorf("%s:%d: unterminated section header", source, lineno)
			}
			section = strings.TrimSpace(line[1 : len(line)-1])
			if section == "" {
				return fmt.Errorf("%s:%d: empty section name", source, lineno)
			}
			continue
		}

		name, raw, found := strings.Cut(line, "=")
		if !found {
			return fmt.Errorf("%s:%d: expected name = value", source, lineno)
		}
		name = strings.TrimSpace(name)
		raw = strings.TrimSpace(raw)
		if section == "" {
			return fmt.Errorf("%s:%d: entry %q before any section header", source, lineno, name)
		}
		if name == "" {
			return fmt.Errorf("%s:%d: empty entry name", source, lineno)
		}

		if err := storeValue(block, section, name, raw); err != nil {
			return fmt.Errorf("%s:%d: %w", source, lineno, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return nil
}

// stripComment removes a trailing ";" or "#" comment, respecting double
// quotes.
func stripComment(line string) string {
	inQuotes := false
	for i, c := range line {
		switch c {
		case '"':
			inQuotes = !inQuotes
		case ';', '#':
			if !inQuotes {
				return line[:i]
			}
		}
	}
	return line
}

// storeValue infers the value's type from its shape and puts it.
func storeValue(block *datablock.DataBlock, section, name, raw string) error {
	if strings.HasPrefix(raw, "\"") {
		s, err := strconv.Unquote(raw)
		if err != nil {
			return fmt.Errorf("bad string literal %s: %w", raw, err)
		}
		return datablock.Put(block, section, name, s)
	}

	fields := strings.Fields(raw)
	if len(fields) > 1 {
		return storeList(block, section, name, fields)
	}

	switch raw {
	case "":
		return fmt.Errorf("empty value for %q", name)
	case "true", "false":
		return datablock.Put(block, section, name, raw == "true")
	}

	if i, err := strconv.ParseInt(raw, 10, 32); err == nil {
		return datablock.Put(block, section, name, int32(i))
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return datablock.Put(block, section, name, f)
	}
	if z, err := strconv.ParseComplex(raw, 128); err == nil {
		return datablock.Put(block, section, name, z)
	}

	// Bare text.
	return datablock.Put(block, section, name, raw)
}

// storeList types a whitespace-separated list as the narrowest numeric
// element type that fits every element.
func storeList(block *datablock.DataBlock, section, name string, fields []string) error {
	ints := make([]int32, 0, len(fields))
	allInts := true
	for _, f := range fields {
		i, err := strconv.ParseInt(f, 10, 32)
		if err != nil {
			allInts = false
			break
		}
		ints = append(ints, int32(i))
	}
	if allInts {
		return datablock.Put(block, section, name, ints)
	}

	doubles := make([]float64, 0, len(fields))
	allDoubles := true
	for _, f := range fields {
		d, err := strconv.ParseFloat(f, 64)
		if err != nil {
			allDoubles = false
			break
		}
		doubles = append(doubles, d)
	}
	if allDoubles {
		return datablock.Put(block, section, name, doubles)
	}

	complexes := make([]complex128, 0, len(fields))
	for _, f := range fields {
		z, err := strconv.ParseComplex(f, 128)
		if err != nil {
			return fmt.Errorf("cannot type list element %q", f)
		}
		complexes = append(complexes, z)
	}
	return datablock.Put(block, section, name, complexes)
}
