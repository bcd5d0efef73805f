package collector

import (
	"fmt"
	"strings"
	"sync"

	"github.com/jaypipes/pcidb"
)

// pciNameDB resolves raw PCI vendor/device IDs to human-readable names
// using the pci.ids database. Loading is deferred until the first
// sysfs-fallback lookup since the lspci path never needs it.
type pciNameDB struct {
	once sync.Once
	db   *pcidb.PCIDB
}

func newPCINameDB() *pciNameDB {
	return &pciNameDB{}
}

func (p *pciNameDB) get() *pcidb.PCIDB {
	p.once.Do(func() {
		db, err := pcidb.New()
		if err != nil {
			return
		}
		p.db = db
	})
	return p.db
}

// describe returns "Vendor Device" for the given hex IDs, degrading to
// the vendor name alone and finally to "vendor:device" raw IDs.
func (p *pciNameDB) describe(vendorID, deviceID string) string {
	vendorID = normalizePCIID(vendorID)
	deviceID = normalizePCIID(deviceID)
	raw := fmt.Sprintf("%s:%s", vendorID, deviceID)

	db := p.get()
	if db == nil {
		return raw
	}
	vendor, ok := db.Vendors[vendorID]
	if !ok {
		return raw
	}
	for _, product := range vendor.Products {
		if product.ID == deviceID {
			return fmt.Sprintf("%s %s", vendor.Name, product.Name)
		}
	}
	return fmt.Sprintf("%s %s", vendor.Name, raw)
}

func normalizePCIID(id string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(id), "0x"))
}
