package main

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-crypt/x/blake2b"

	"github.com/poiesic/datablock"
	"github.com/poiesic/datablock/core"
)

// renderBlock writes a block's contents back out in parameter-file shape,
// sections and names sorted. The output is canonical: two blocks with the
// same entries render identically, which is what fingerprinting relies on.
func renderBlock(b *datablock.DataBlock) (string, error) {
	var sb strings.Builder

	sections, err := b.Sections()
	if err != nil {
		return "", err
	}
	for _, section := range sections {
		fmt.Fprintf(&sb, "[%s]\n", section)

		names, err := b.Names(section)
		if err != nil {
			return "", err
		}
		for _, name := range names {
			tag, err := b.Type(section, name)
			if err != nil {
				return "", err
			}
			text, err := renderValue(b, section, name, tag)
			if err != nil {
				return "", err
			}
			fmt.Fprintf(&sb, "%s = %s\n", name, text)
		}
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

func renderValue(b *datablock.DataBlock, section, name string, tag core.TypeTag) (string, error) {
	switch tag {
	case core.TypeInt:
		v, err := datablock.Get[int32](b, section, name)
		return strconv.FormatInt(int64(v), 10), err
	case core.TypeBool:
		v, err := datablock.Get[bool](b, section, name)
		return strconv.FormatBool(v), err
	case core.TypeDouble:
		v, err := datablock.Get[float64](b, section, name)
		return strconv.FormatFloat(v, 'g', -1, 64), err
	case core.TypeComplex:
		v, err := datablock.Get[complex128](b, section, name)
		return strconv.FormatComplex(v, 'g', -1, 128), err
	case core.TypeString:
		v, err := datablock.Get[string](b, section, name)
		return strconv.Quote(v), err
	case core.TypeIntArray:
		v, err := datablock.Get[[]int32](b, section, name)
		if err != nil {
			return "", err
		}
		parts := make([]string, len(v))
		for i, e := range v {
			parts[i] = strconv.FormatInt(int64(e), 10)
		}
		return strings.Join(parts, " "), nil
	case core.TypeDoubleArray:
		v, err := datablock.Get[[]float64](b, section, name)
		if err != nil {
			return "", err
		}
		parts := make([]string, len(v))
		for i, e := range v {
			parts[i] = strconv.FormatFloat(e, 'g', -1, 64)
		}
		return strings.Join(parts, " "), nil
	case core.TypeComplexArray:
		v, err := datablock.Get[[]complex128](b, section, name)
		if err != nil {
			return "", err
		}
		parts := make([]string, len(v))
		for i, e := range v {
			parts[i] = strconv.FormatComplex(e, 'g', -1, 128)
		}
		return strings.Join(parts, " "), nil
	default:
		return "", fmt.Errorf("unrenderable type %s at (%s, %s)", tag, section, name)
	}
}

// fingerprintBlock hashes the canonical rendering with BLAKE2b.
func fingerprintBlock(b *datablock.DataBlock) (string, error) {
	text, err := renderBlock(b)
	if err != nil {
		return "", err
	}
	h, err := blake2b.New(16, nil)
	if err != nil {
		return "", err
	}
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil)), nil
}
