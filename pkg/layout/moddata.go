package layout

import (
	"strings"

	"github.com/ashduino101/polyparser/pkg/errors"
)

// modDelimiter separates the name, version, and settings parts inside a mod
// identifier string. The mod framework picked an Armenian eternity sign on
// the theory that no mod name would ever contain one.
const modDelimiter = "֍"

// splitModIdentifier splits a mod identifier into name, version, and
// settings; missing parts default to empty strings.
func splitModIdentifier(s string) (name, version, settings string) {
	parts := strings.Split(s, modDelimiter)
	if len(parts) >= 1 {
		name = parts[0]
	}
	if len(parts) >= 2 {
		version = parts[1]
	}
	if len(parts) >= 3 {
		settings = parts[2]
	}
	return name, version, settings
}

// modData decodes the trailing block the mod framework appends to layouts it
// marked with a negated version.
func (d *decoder) modData() ModData {
	var md ModData

	n := int(d.r.Int16())
	if d.r.Err() != nil {
		return md
	}
	if err := d.guard.Check("mod count", n); err != nil {
		d.r.SetErr(err)
		return md
	}
	d.log.Infof("layout saved with %d mods", n)
	for i := 0; i < n; i++ {
		name, version, settings := splitModIdentifier(d.r.String())
		d.log.Debugf("mod: %s %s", name, version)
		md.Mods = append(md.Mods, Mod{Name: name, Version: version, Settings: settings})
	}

	// The save-data block is optional and has no presence marker; only the
	// stream position tells whether it exists. The probe must restore the
	// exact offset before reading on.
	pos := d.r.Pos()
	if pos == d.r.Len() {
		return md
	}
	d.r.Seek(pos)

	n = d.count("mod save data")
	if n == 0 {
		return md
	}
	for i := 0; i < n; i++ {
		identifier := d.r.String()
		name, version, _ := splitModIdentifier(identifier)
		if d.r.Err() != nil {
			return md
		}
		if name == "" {
			d.log.Warnf("invalid mod identifier: %s", identifier)
			continue
		}
		d.log.Debugf("mod save data: %s %s", name, version)

		data := d.byteArray()
		md.SaveData = append(md.SaveData, ModSaveData{Name: name, Version: version, Data: data})
	}
	return md
}

// byteArray reads an int32 element count followed by that many bytes. A
// non-positive count is malformed input.
func (d *decoder) byteArray() []byte {
	n := int(d.r.Int32())
	if d.r.Err() != nil {
		return nil
	}
	if n <= 0 {
		d.r.SetErr(errors.At(errors.ErrCodeInvalidLength, d.r.Pos(), "byte array length %d is not positive", n))
		return nil
	}
	if err := d.guard.CheckBlob("mod save data size", n); err != nil {
		d.r.SetErr(err)
		return nil
	}
	return d.r.Bytes(n)
}
