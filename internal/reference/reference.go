// Package reference holds the fixed material and equipment catalogs. They
// are loaded once from configuration and shared read-only by all requests.
package reference

type Data struct {
	materials    []string
	equipment    []string
	materialSet  map[string]struct{}
	equipmentSet map[string]struct{}
}

func NewData(materials, equipment []string) *Data {
	d := &Data{
		materials:    append([]string(nil), materials...),
		equipment:    append([]string(nil), equipment...),
		materialSet:  make(map[string]struct{}, len(materials)),
		equipmentSet: make(map[string]struct{}, len(equipment)),
	}
	for _, m := range materials {
		d.materialSet[m] = struct{}{}
	}
	for _, e := range equipment {
		d.equipmentSet[e] = struct{}{}
	}
	return d
}

// Materials returns the configured material names in configuration order.
func (d *Data) Materials() []string {
	return append([]string(nil), d.materials...)
}

// Equipment returns the configured equipment names in configuration order.
func (d *Data) Equipment() []string {
	return append([]string(nil), d.equipment...)
}

func (d *Data) IsValidMaterial(name string) bool {
	_, ok := d.materialSet[name]
	return ok
}

func (d *Data) IsValidEquipment(name string) bool {
	_, ok := d.equipmentSet[name]
	return ok
}
