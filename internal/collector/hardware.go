package collector

import (
	"github.com/jaypipes/ghw"

	"sysglance/internal/model"
)

// Hardware reads machine identity from DMI: system vendor/product, baseboard
// and firmware. Sources that cannot be read contribute empty fields.
func Hardware() model.HardwareInfo {
	var hw model.HardwareInfo

	if product, err := ghw.Product(); err == nil {
		hw.Vendor = product.Vendor
		hw.Product = product.Name
		hw.SerialNumber = product.SerialNumber
	}
	if board, err := ghw.Baseboard(); err == nil {
		hw.BoardVendor = board.Vendor
		hw.BoardName = board.Product
	}
	if bios, err := ghw.BIOS(); err == nil {
		hw.BIOSVendor = bios.Vendor
		hw.BIOSVersion = bios.Version
		hw.BIOSDate = bios.Date
	}

	return hw
}
