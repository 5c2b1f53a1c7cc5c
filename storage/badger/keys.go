package badger

// Value keys are "v:" + section + NUL + name. Section and name come from the
// public API as non-empty strings; a NUL separator cannot collide with them
// because the text they carry never contains NUL (it originates from
// C-string-shaped identifiers).
const valueKeyPrefix = "v:"

// makeValueKey generates the key for the entry at (section, name).
func makeValueKey(section, name string) []byte {
	buf := make([]byte, 0, len(valueKeyPrefix)+len(section)+1+len(name))
	buf = append(buf, valueKeyPrefix...)
	buf = append(buf, section...)
	buf = append(buf, 0)
	buf = append(buf, name...)
	return buf
}

// makeSectionPrefix generates the common prefix of every key in a section.
func makeSectionPrefix(section string) []byte {
	buf := make([]byte, 0, len(valueKeyPrefix)+len(section)+1)
	buf = append(buf, valueKeyPrefix...)
	buf = append(buf, section...)
	buf = append(buf, 0)
	return buf
}

// splitValueKey recovers (section, name) from a value key. The ok result is
// false for keys that do not follow the value key layout.
func splitValueKey(key []byte) (section, name string, ok bool) {
	if len(key) < len(valueKeyPrefix) || string(key[:len(valueKeyPrefix)]) != valueKeyPrefix {
		return "", "", false
	}
	rest := key[len(valueKeyPrefix):]
	for i, c := range rest {
		if c == 0 {
			return string(rest[:i]), string(rest[i+1:]), true
		}
	}
	return "", "", false
}
