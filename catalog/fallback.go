package catalog

import (
	"slices"

	"github.com/kiwiflowai-ai/totalcare-website/models"
)

// Fallback returns the built-in product list used whenever the remote store
// is unreachable or unconfigured. It is authored directly in canonical
// shape, so it needs no normalization, and it is non-empty by construction.
func Fallback() []models.Product {
	return slices.Clone(fallbackProducts)
}

var fallbackProducts = []models.Product{
	{
		ID:    "daikin-standard-20-27kw-heat-pump-ftxv20u",
		Name:  "Daikin Standard 2.0/2.7kw Heat Pump",
		Brand: "Daikin",
		Description: `Cooling:  2.0 kW
Heating:  2.7 kW

Optional WiFi Adaptor($150)

Dimensions (HxWxD)
Indoor:285x770x223
Outdoor:550x675x284

Indoor Sound Level (H/SL)
Cool (dBA)        42/19
Heat (dBA)        40/20
Outdoor Sound Level (H/SL)        Cool (dBA)        47/43
Heat (dBA)        48/44`,
		Model:           "FTXV20U",
		Price:           "$1553+GST",
		CoolingCapacity: "2.0kW",
		HeatingCapacity: "2.7kW",
		HasWifi:         true,
		Series:          "Standard",
	},
	{
		ID:    "daikin-cora-20-28kw-heat-pump-ftxm25u",
		Name:  "Daikin Cora 2.0/2.8kw Heat Pump",
		Brand: "Daikin",
		Description: `Cooling:  2.0 kW
Heating:  2.8 kW

Optional WiFi Adaptor($150)

Dimensions (HxWxD)
Indoor:285x770x226
Outdoor:550x675x284

Indoor Sound Level (H/SL)
Cool (dBA)        42/19
Heat (dBA)        40/20
Outdoor Sound Level (H/SL)        Cool (dBA)        47/43
Heat (dBA)        48/44`,
		Model:           "FTXM25U",
		Price:           "$1620+GST ",
		CoolingCapacity: "2.0kW",
		HeatingCapacity: "2.8kW",
		HasWifi:         true,
		Series:          "Cora",
	},
	{
		ID:    "daikin-alira-22-27-kw-heat-pump-with-wifi-ftxm20y",
		Name:  "Daikin Alira 2.2/2.7 kw Heat Pump with WIFI",
		Brand: "Daikin",
		Description: `Cooling:  2.2 kW
Heating:  2.7 kW

Built-in WiFi
Mould-proof Operation 
Advanced Air Purification

Dimensions (HxWxD)
Indoor:299x920x275
Outdoor:550x675x284

Indoor Sound Level (H/SL)
Cool (dBA)        41/19
Heat (dBA)        40/20
Outdoor Sound Level (H/SL)        Cool (dBA)        47/43
Heat (dBA)        48/44`,
		Model:           "FTXM20Y",
		Price:           "$1721+GST",
		CoolingCapacity: "2.2kW",
		HeatingCapacity: "2.7kW",
		HasWifi:         true,
		Series:          "Alira",
		Image:           "/src/assets/Daikin/Alira/FTXM20U Alira 2.0-2.7/Alira 2.0 kw.JPG",
	},
	{
		ID:    "daikin-standard-25-30kw-heat-pump-ftxv25u",
		Name:  "Daikin Standard 2.5/3.0kw heat pump",
		Brand: "Daikin",
		Description: `Cooling:  2.50 kW
Heating:  3.20 kW


Dimensions (HxWxD)
Indoor:285x770x223
Outdoor:550x675x284

Indoor Sound Level (H/SL)
Cool (dBA)	42/19
Heat (dBA)	40/20
Outdoor Sound Level (H/SL)	Cool (dBA)	47/43
Heat (dBA)	48/44`,
		Model:           "FTXV25U",
		Price:           "$1566+GST",
		CoolingCapacity: "2.50kW",
		HeatingCapacity: "3.20kW",
		HasWifi:         true,
		Series:          "Standard",
	},
	{
		ID:    "daikin-cora-25-30kw-heat-pump-ftxm25u",
		Name:  "Daikin Cora 2.5/3.0kw heat pump",
		Brand: "Daikin",
		Description: `Cooling:  2.50 kW
Heating:  3.20 kW

Optional WiFi Adaptor($150)

Dimensions (HxWxD)
Indoor:285x770x226
Outdoor:550x675x284

Indoor Sound Level (H/SL)
Cool (dBA)	42/19
Heat (dBA)	40/20
Outdoor Sound Level (H/SL)	Cool (dBA)	47/43
Heat (dBA)	48/44`,
		Model:           "FTXM25U",
		Price:           "$1750+GST",
		CoolingCapacity: "2.50kW",
		HeatingCapacity: "3.20kW",
		HasWifi:         true,
		Series:          "Cora",
	},
	{
		ID:    "daikin-alira-25-32kw-heat-pump-ftxm25wvma",
		Name:  "Daikin Alira 2.5/3.2kw heat pump",
		Brand: "Daikin",
		Description: `Cooling:  2.50 kW
Heating:  3.20 kW

Built-in WiFi
Mould-proof Operation 
Advanced Air Purification

Dimensions (HxWxD)
Indoor:299x920x275
Outdoor:550x675x284

Indoor Sound Level (H/SL)
Cool (dBA)        41/19
Heat (dBA)        40/20
Outdoor Sound Level (H/SL)        Cool (dBA)        47/43
Heat (dBA)        48/44`,
		Model:           "FTXM25WVMA",
		Price:           "$1844+GST",
		CoolingCapacity: "2.50kW",
		HeatingCapacity: "3.20kW",
		HasWifi:         true,
		Series:          "Alira",
	},
	{
		ID:    "daikin-standard-35-37kw-heat-pump-ftxv35u",
		Name:  "Daikin Standard 3.5/3.7kw heat pump",
		Brand: "Daikin",
		Description: `Cooling:  3.5 kW
Heating:  3.7kW

Optional WiFi Adaptor($150)

Dimensions (HxWxD)
Indoor:285x770x223
Outdoor:550x675x284

Indoor Sound Level (H/SL)
Cool (dBA)        42/19
Heat (dBA)        40/20
Outdoor Sound Level (H/SL)        Cool (dBA)        49/44
Heat (dBA)        49/45`,
		Model:           "FTXV35U",
		Price:           "$1735+GST",
		CoolingCapacity: "3.5kW",
		HeatingCapacity: "3.7kW",
		HasWifi:         true,
		Series:          "Standard",
	},
	{
		ID:    "daikin-new-cora-35-40kw-heat-pump-ftxm35u",
		Name:  "Daikin New Cora 3.5/4.0kw heat pump",
		Brand: "Daikin",
		Description: `Cooling:  3.5 kW
Heating:  4.0 kW

Optional WiFi Adaptor($150)

Dimensions (HxWxD)
Indoor:285x770x226
Outdoor:550x675x284

Indoor Sound Level (H/SL)
Cool (dBA)	42/19
Heat (dBA)	40/20
Outdoor Sound Level (H/SL)	Cool (dBA)	49/44
Heat (dBA)	50/45`,
		Model:           "FTXM35U",
		Price:           "$1888+GST",
		CoolingCapacity: "3.5kW",
		HeatingCapacity: "4.0kW",
		HasWifi:         true,
		Series:          "Cora",
	},
	{
		ID:    "daikin-alira-35-37kw-heat-pump-ftxm35y",
		Name:  "Daikin Alira 3.5/3.7kw heat pump",
		Brand: "Daikin",
		Description: `Cooling:  3.5 kW
Heating:  3.7 kW

Built-in WiFi
Mould-proof Operation 
Advanced Air Purification

Dimensions (HxWxD)
Indoor:299x920x275
Outdoor:550x675x284

Indoor Sound Level (H/SL)
Cool (dBA)        42/19
Heat (dBA)        42/20
Outdoor Sound Level (H/SL)        Cool (dBA)        49/44
Heat (dBA)        49/45`,
		Model:           "FTXM35Y",
		Price:           "$2001+GST",
		CoolingCapacity: "3.5kW",
		HeatingCapacity: "3.7kW",
		HasWifi:         true,
		Series:          "Alira",
	},
	{
		ID:    "daikin-standard-50-60kw-heat-pump-ftxv50u",
		Name:  "Daikin Standard 5.0/6.0kw heat pump",
		Brand: "Daikin",
		Description: `Cooling:  5.0 kW
Heating:  6.0 kW

Optional WiFi Adaptor

Dimensions (HxWxD)
Indoor:295x990x264
Outdoor:695x930x350

Indoor Sound Level (H/SL)
Cool (dBA)        45/28
Heat (dBA)        45/28
Outdoor Sound Level (H/SL)        Cool (dBA)        47/44
Heat (dBA)        48/45`,
		Model:           "FTXV50U",
		Price:           "$2125+GST",
		CoolingCapacity: "5.0kW",
		HeatingCapacity: "6.0kW",
		HasWifi:         true,
		Series:          "Standard",
	},
	{
		ID:    "daikin-new-cora-50-61kw-heat-pump-ftxm50u",
		Name:  "Daikin New Cora 5.0/6.1kw heat pump",
		Brand: "Daikin",
		Description: `Cooling:  5.0 kW
Heating:  6.1 kW

Optional WiFi Adaptor($150)

Dimensions (HxWxD)
Indoor:295x990x226
Outdoor:695x930x350

Indoor Sound Level (H/SL)
Cool (dBA)	45/28
Heat (dBA)	45/28
Outdoor Sound Level (H/SL)	
Cool (dBA)	47/44
Heat (dBA)	48/45`,
		Model:           "FTXM50U",
		Price:           "$2302+GST ",
		CoolingCapacity: "5.0kW",
		HeatingCapacity: "6.1kW",
		HasWifi:         true,
		Series:          "Cora",
	},
	{
		ID:    "daikin-alira-50-60kw-heat-pump-with-wifi-ftxm50w",
		Name:  "Daikin Alira 5.0/6.0kw heat pump with WIFI",
		Brand: "Daikin",
		Description: `Cooling:  5.0 kW
Heating:  6.0 kW

Built-in WiFi
Mould-proof Operation 
Advanced Air Purification

Dimensions (HxWxD)
Indoor:299x1100x275
Outdoor:695x930x275

Indoor Sound Level (H/SL)
Cool (dBA)        45/28
Heat (dBA)        45/28
Outdoor Sound Level (H/SL)        Cool (dBA)        47/44
Heat (dBA)        48/45`,
		Model:           "FTXM50W",
		Price:           "$2498+GST",
		CoolingCapacity: "5.0kW",
		HeatingCapacity: "6.0kW",
		HasWifi:         true,
		Series:          "Alira",
	},
	{
		ID:    "daikin-standard-60-72kw-heat-pump-ftxv60u",
		Name:  "Daikin Standard 6.0/7.2kw heat pump",
		Brand: "Daikin",
		Description: `Cooling:  6.0kW
Heating:  7.2kW

Optional WiFi Adaptor($150)

Dimensions (HxWxD)
Indoor:295x990x263
Outdoor:695x930x350

Indoor Sound Level (H/SL)
Cool (dBA)	48/29
Heat (dBA)	48/29
Outdoor Sound Level (H/SL)	Cool (dBA)	49/45
Heat (dBA)	52/45`,
		Model:           "FTXV60U",
		Price:           "$2619+GST",
		CoolingCapacity: "6.0kW",
		HeatingCapacity: "7.2kW",
		HasWifi:         true,
		Series:          "Standard",
	},
	{
		ID:    "daikin-new-cora-60-73kw-heat-pump-ftxm60u",
		Name:  "Daikin New Cora 6.0/7.3kw heat pump",
		Brand: "Daikin",
		Description: `Cooling:  6.0 kW
Heating:  7.3 kW

Optional WiFi Adaptor($150)

Dimensions (HxWxD)
Indoor:295x990x226
Outdoor:695x930x350

Indoor Sound Level (H/SL)
Cool (dBA)	48/29
Heat (dBA)	48/29
Outdoor Sound Level (H/SL)	
Cool (dBA)	49/45
Heat (dBA)	52/45`,
		Model:           "FTXM60U",
		Price:           "$2714+GST",
		CoolingCapacity: "6.0kW",
		HeatingCapacity: "7.3kW",
		HasWifi:         true,
		Series:          "Cora",
	},
	{
		ID:    "daikin-alira-60-72kw-heat-pump-with-wifi-ftxm60w",
		Name:  "Daikin Alira 6.0/7.2kw heat pump with WiFi",
		Brand: "Daikin",
		Description: `Cooling:  6.2 kW
Heating:  7.3 kW

Built-in WiFi
Mould-proof Operation 
Advanced Air Purification

Dimensions (HxWxD)
Indoor:299x1100x275
Outdoor:695x930x275

Indoor Sound Level (H/SL)
Cool (dBA)        48/29
Heat (dBA)        48/29
Outdoor Sound Level (H/SL)        Cool (dBA)        49/45
Heat (dBA)        52/45`,
		Model:           "FTXM60W",
		Price:           "$2838+GST",
		CoolingCapacity: "6.2kW",
		HeatingCapacity: "7.3kW",
		HasWifi:         true,
		Series:          "Alira",
	},
	{
		ID:    "daikin-standard-71-80kw-heat-pump-ftxv71u",
		Name:  "Daikin Standard 7.1/8.0kw heat pump",
		Brand: "Daikin",
		Description: `Cooling:  7.1kW
Heating:  8.0kW

Optional WiFi Adaptor($150)

Dimensions (HxWxD)
Indoor:295x990x263
Outdoor:695x930x350

Indoor Sound Level (H/SL)
Cool (dBA)	49/30
Heat (dBA)	49/30
Outdoor Sound Level (H/SL)	Cool (dBA)	53/49
Heat (dBA)	54/49`,
		Model:           "FTXV71U",
		Price:           "$2995+GST",
		CoolingCapacity: "7.1kW",
		HeatingCapacity: "8.0kW",
		HasWifi:         true,
		Series:          "Standard",
	},
	{
		ID:    "daikin-new-cora-71-81kw-heat-pump-ftxm71u",
		Name:  "Daikin New Cora 7.1/8.1kw heat pump",
		Brand: "Daikin",
		Description: `Cooling:  7.1 kW
Heating:  8.1 kW

Optional WiFi Adaptor($150)

Dimensions (HxWxD)
Indoor:295x990x226
Outdoor:695x930x350

Indoor Sound Level (H/SL)
Cool (dBA)	49/30
Heat (dBA)	49/30
Outdoor Sound Level (H/SL)	
Cool (dBA)	53/49
Heat (dBA)	53/49`,
		Model:           "FTXM71U",
		Price:           "$3042+GST",
		CoolingCapacity: "7.1kW",
		HeatingCapacity: "8.1kW",
		HasWifi:         true,
		Series:          "Cora",
	},
	{
		ID:    "daikin-alira-71-80kw-heat-pump-ftxm71w",
		Name:  "Daikin Alira 7.1/8.0kw heat pump",
		Brand: "Daikin",
		Description: `Cooling:  7.1 kw
Heating:  8.0 kw

Built-in WiFi
Mould-proof Operation 
Advanced Air Purification

Dimensions (HxWxD)
Indoor:299x1100x275
Outdoor:695x930x275

Indoor Sound Level (H/SL)
Cool (dBA)        49/30
Heat (dBA)        49/30
Outdoor Sound Level (H/SL)        
Cool (dBA)        53/49
Heat (dBA)        54/49`,
		Model:           "FTXM71W",
		Price:           "$3263+GST",
		CoolingCapacity: "7.1kW",
		HeatingCapacity: "8.0kW",
		HasWifi:         true,
		Series:          "Alira",
	},
	{
		ID:    "daikin-standard-80-90kw-heat-pump-ftxv80w",
		Name:  "Daikin Standard 8.0/9.0kw heat pump",
		Brand: "Daikin",
		Description: `Cooling:  8.0 kw
Heating:  9.0 kw

Optional WiFi Adaptor($150)

Dimensions (HxWxD)
Indoor:329x1240x278
Outdoor:990x940x320

Indoor Sound Level (H/SL)
Cool (dBA)	51/37
Heat (dBA)	51/35
Outdoor Sound Level (H/SL)	
Cool (dBA)	54/51
Heat (dBA)	55/51`,
		Model:           "FTXV80W",
		Price:           "$3373+GST",
		CoolingCapacity: "8.0kW",
		HeatingCapacity: "9.0kW",
		HasWifi:         true,
		Series:          "Standard",
	},
	{
		ID:    "daikin-alira-85-90kw-heat-pump-ftxm85w",
		Name:  "Daikin Alira 8.5/9.0kw heat pump",
		Brand: "Daikin",
		Description: `Cooling:  8.5 kw
Heating:  9.0 kw

Built-in WiFi
Mould-proof Operation 
Advanced Air Purification

Dimensions (HxWxD)
Indoor:329x1240x278
Outdoor:990x940x320

Indoor Sound Level (H/SL)
Cool (dBA)        49/35
Heat (dBA)        49/33
Outdoor Sound Level (H/SL)        
Cool (dBA)        54/51
Heat (dBA)        55/51`,
		Model:           "FTXM85W",
		Price:           "$3456+GST ",
		CoolingCapacity: "8.5kW",
		HeatingCapacity: "9.0kW",
		HasWifi:         true,
		Series:          "Alira",
	},
	{
		ID:    "daikin-standard-90-103-kw-heat-pump-ftxv90w",
		Name:  "Daikin Standard 9.0/10.3 kw Heat Pump",
		Brand: "Daikin",
		Description: `Cooling:  9.0 kw
Heating:  10.3 kw

Optional WiFi Adaptor($150)

Dimensions (HxWxD)
Indoor:329x1240x278
Outdoor:990x940x320

Indoor Sound Level (H/SL)
Cool (dBA)	51/37
Heat (dBA)	51/35
Outdoor Sound Level (H/SL)	
Cool (dBA)	54/51
Heat (dBA)	55/51`,
		Model:           "FTXV90W",
		Price:           "$3977+gst",
		CoolingCapacity: "9.0kW",
		HeatingCapacity: "10.3kW",
		HasWifi:         true,
		Series:          "Standard",
	},
	{
		ID:    "daikin-alira-95-103kw-heat-pump-with-wifi-ftxm95w",
		Name:  "Daikin Alira 9.5/10.3kw Heat pump with WiFi",
		Brand: "Daikin",
		Description: `Cooling:  9.5 kw
Heating:  10.3 kw

Built-in WiFi
Mould-proof Operation 
Advanced Air Purification

Dimensions (HxWxD)
Indoor:329x1240x278
Outdoor:990x940x320

Indoor Sound Level (H/SL)
Cool (dBA)	49/35
Heat (dBA)	49/33
Outdoor Sound Level (H/SL)`,
		Model:           "FTXM95W",
		Price:           "$4052+gst",
		CoolingCapacity: "9.5kW",
		HeatingCapacity: "10.3kW",
		HasWifi:         true,
		Series:          "Alira",
	},
	{
		ID:    "daikin-lite-25-30kw-heat-pump-ftxf25wvma",
		Name:  "Daikin Lite 2.5/3.0kw Heat pump",
		Brand: "Daikin",
		Description: `Cooling:  2.50 kW
Heating:  3.20 kW

Dimensions (HxWxD)
Indoor:285x770x284
Outdoor:550x675x284

Indoor Sound Level (H/SL)
Cool (dBA)        40/19
Heat (dBA)        40/20
Outdoor Sound Level (H/SL)        
Cool (dBA)        47/43
Heat (dBA)        48/44`,
		Model:           "FTXF25WVMA",
		Price:           "$1587+GST",
		CoolingCapacity: "2.50kW",
		HeatingCapacity: "3.20kW",
		HasWifi:         false,
		Series:          "Other",
	},
	{
		ID:    "daikin-lite-35-37kw-heat-pump-ftxf35wvma",
		Name:  "Daikin Lite 3.5/3.7kw heat pump",
		Brand: "Daikin",
		Description: `Cooling:  3.5 kW
Heating:  3.7 kW

Dimensions (HxWxD)
Indoor:285x770x284
Outdoor:550x675x284

Indoor Sound Level (H/SL)
Cool (dBA)        42/19
Heat (dBA)        42/20
Outdoor Sound Level (H/SL)        
Cool (dBA)        48/43
Heat (dBA)        49/45`,
		Model:           "FTXF35WVMA",
		Price:           "$1667+GST",
		CoolingCapacity: "3.5kW",
		HeatingCapacity: "3.7kW",
		HasWifi:         false,
		Series:          "Other",
	},
	{
		ID:    "daikin-lite-50-52kw-heat-pump-ftxf50w",
		Name:  "Daikin Lite 5.0/5.2kw heat pump",
		Brand: "Daikin",
		Description: `Cooling:  5.0 kW
Heating:  5.2 kW

Dimensions (HxWxD)
Indoor:295x990x263
Outdoor:595x845x300

Indoor Sound Level (H/SL)
Cool (dBA)        45/28
Heat (dBA)        45/28
Outdoor Sound Level (H/SL)        
Cool (dBA)        47/44
Heat (dBA)        50/46`,
		Model:           "FTXF50W",
		Price:           "$2058+GST",
		CoolingCapacity: "5.0kW",
		HeatingCapacity: "5.2kW",
		HasWifi:         false,
		Series:          "Other",
	},
	{
		ID:    "daikin-lite-60-65kw-heat-pump-ftxf60w",
		Name:  "Daikin Lite 6.0/6.5kw heat pump",
		Brand: "Daikin",
		Description: `Cooling:  6.0 kW
Heating:  6.5 kW

Dimensions (HxWxD)
Indoor:295x990x263
Outdoor:595x845x300

Indoor Sound Level (H/SL)
Cool (dBA)        46/29
Heat (dBA)        46/29
Outdoor Sound Level (H/SL)        
Cool (dBA)        49/46
Heat (dBA)        51/47`,
		Model:           "FTXF60W",
		Price:           "$2519+GST",
		CoolingCapacity: "6.0kW",
		HeatingCapacity: "6.5kW",
		HasWifi:         false,
		Series:          "Other",
	},
	{
		ID:    "daikin-lite-71-80kw-heat-pump-ftxf71wvma",
		Name:  "Daikin Lite 7.1/8.0kw heat pump",
		Brand: "Daikin",
		Description: `Cooling:  7.1 kW
Heating:  8.0 kW

Dimensions (HxWxD)
Indoor:295x990x263
Outdoor:695x930x350

Indoor Sound Level (H/SL)
Cool (dBA)        49/30
Heat (dBA)        49/30
Outdoor Sound Level (H/SL)        
Cool (dBA)        43/47
Heat (dBA)        54/49`,
		Model:           "FTXF71WVMA",
		Price:           "$2856+GST",
		CoolingCapacity: "7.1kW",
		HeatingCapacity: "8.0kW",
		HasWifi:         false,
		Series:          "Other",
	},
	{
		ID:    "daikin-aura-25-35-kw-floor-console-with-wifi-fvxm25y",
		Name:  "Daikin Aura 2.5/3.5 kw Floor Console with WiFi",
		Brand: "Daikin",
		Description: `2.5 kw Cooling 
3.5 kw Heating 

Indoor(HxWxD) : 600x750x238
Outdoor(HxWxD) : 595x845x300

Indoor max : 20 dBA
Outdoor max : 60 dBA

1/4,3/8 copper size`,
		Model:           "FVXM25Y",
		Price:           "$2401+GST",
		CoolingCapacity: "",
		HeatingCapacity: "",
		HasWifi:         true,
		Series:          "Other",
	},
	{
		ID:    "daikin-aura-35-45kw-floor-console-with-wifi-fvxm35y",
		Name:  "Daikin Aura 3.5/4.5kw Floor Console with WiFi",
		Brand: "Daikin",
		Description: `3.5 kw Cooling 
4.5 kw Heating 

Indoor(HxWxD) : 600x750x238
Outdoor(HxWxD) : 595x845x300

Indoor max : 20 dBA
Outdoor max : 60 dBA

1/4,3/8 copper size`,
		Model:           "FVXM35Y",
		Price:           "$2708+GST",
		CoolingCapacity: "",
		HeatingCapacity: "",
		HasWifi:         true,
		Series:          "Other",
	},
	{
		ID:    "daikin-aura-45-54kw-floor-console-with-wifi-fvxm45y",
		Name:  "Daikin Aura 4.5/5.4kw Floor Console with WiFi",
		Brand: "Daikin",
		Description: `4.5 kw Cooling 
5.4 kw Heating 

Indoor(HxWxD) : 600x750x238
Outdoor(HxWxD) : 595x845x300

Indoor max : 29 dBA
Outdoor max : 63 dBA

1/4,3/8 copper size`,
		Model:           "FVXM45Y",
		Price:           "$2908+GST",
		CoolingCapacity: "",
		HeatingCapacity: "",
		HasWifi:         true,
		Series:          "Other",
	},
	{
		ID:    "daikin-aura-50-60kw-floor-console-with-wifi-fvxm50y",
		Name:  "Daikin Aura 5.0/6.0kw Floor Console with WiFi",
		Brand: "Daikin",
		Description: `5.0 kw Cooling 
6.0 kw Heating 

Indoor(HxWxD) : 600x750x238
Outdoor(HxWxD) : 695x930x350

Indoor max : 29 dBA
Outdoor max : 63 dBA

1/4,1/2 copper size
`,
		Model:           "FVXM50Y",
		Price:           "$3009+GST",
		CoolingCapacity: "",
		HeatingCapacity: "",
		HasWifi:         true,
		Series:          "Other",
	},
	{
		ID:    "daikin-aura-60-70kw-floor-console-with-wifi-fvxm60y",
		Name:  "Daikin Aura 6.0/7.0kw Floor Console with WiFi",
		Brand: "Daikin",
		Description: `6.0 kw Cooling 
7.0 kw Heating 

Indoor(HxWxD) : 600x750x238
Outdoor(HxWxD) : 595x845x300

Indoor max : 34 dBA
Outdoor max : 67 dBA

1/4,1/2 copper size`,
		Model:           "FVXM60Y",
		Price:           "$3377+GST ",
		CoolingCapacity: "",
		HeatingCapacity: "",
		HasWifi:         true,
		Series:          "Other",
	},
	{
		ID:    "daikin-aura-67-80kw-floor-console-with-wifi-fvxm71y",
		Name:  "Daikin Aura 6.7/8.0kw Floor Console with WiFi",
		Brand: "Daikin",
		Description: `6.7 kw Cooling 
8.0 kw Heating 

Indoor(HxWxD) : 600x750x238
Outdoor(HxWxD) : 595x845x300

Indoor max : 34 dBA
Outdoor max : 67 dBA

1/4,1/2 copper size`,
		Model:           "FVXM71Y",
		Price:           "$3861+GST",
		CoolingCapacity: "",
		HeatingCapacity: "",
		HasWifi:         true,
		Series:          "Other",
	},
	{
		ID:    "daikin-zena-25-32-black-colour-with-wifi-ftxj25t-k",
		Name:  "Daikin Zena 2.5/3.2 Black colour with WiFi",
		Brand: "Daikin",
		Description: `Cooling:  2.5 kw
Heating:  3.2 kw

Program Dry Function
Heavy duty Purification
Ultra Compact 
Super Quiet 

Dimensions (HxWxD)
Indoor:295x798x185
Outdoor:550x675x284

Indoor Sound Level (H/SL)
Cool (dBA)	40/19
Heat (dBA)	41/19
Outdoor Sound Level (H/SL)	
Cool (dBA)	47/43
Heat (dBA)	48/44`,
		Model:           "FTXJ25T-K",
		Price:           "$2038+GST",
		CoolingCapacity: "2.5kW",
		HeatingCapacity: "3.2kW",
		HasWifi:         true,
		Series:          "Other",
	},
	{
		ID:    "daikin-zena-35-37kw-black-colour-with-wifi-ftxj35t",
		Name:  "Daikin Zena 3.5/3.7kw Black colour with WiFi",
		Brand: "Daikin",
		Description: `Cooling:  3.5 kw
Heating:  3.7 kw

Program Dry Function
Heavy duty Purification
Ultra Compact 
Super Quiet 

Dimensions (HxWxD)
Indoor:295x798x185
Outdoor:550x675x284

Indoor Sound Level (H/SL)
Cool (dBA)	42/20
Heat (dBA)	42/20
Outdoor Sound Level (H/SL)	
Cool (dBA)	49/44
Heat (dBA)	49/45`,
		Model:           "FTXJ35T",
		Price:           "$2279+GST",
		CoolingCapacity: "3.5kW",
		HeatingCapacity: "3.7kW",
		HasWifi:         true,
		Series:          "Other",
	},
	{
		ID:    "daikin-zena-50-60kw-black-colour-with-wifi-ftxj50t",
		Name:  "Daikin Zena 5.0/6.0kw Black colour with WiFi",
		Brand: "Daikin",
		Description: `Cooling:  5.0 kw
Heating:  6.0 kw

Program Dry Function
Heavy duty Purification
Ultra Compact 
Super Quiet 

Dimensions (HxWxD)
Indoor:295x798x185
Outdoor:695x930x350

Indoor Sound Level (H/SL)
Cool (dBA)        45/32
Heat (dBA)        45/32
Outdoor Sound Level (H/SL)        
Cool (dBA)        47/44
Heat (dBA)        48/45`,
		Model:           "FTXJ50T",
		Price:           "$2720+GST",
		CoolingCapacity: "5.0kW",
		HeatingCapacity: "6.0kW",
		HasWifi:         true,
		Series:          "Other",
	},
	{
		ID:    "daikin-zena-60-72kw-black-colour-with-wifi-ftxj60t-k",
		Name:  "Daikin Zena 6.0/7.2kw Black colour with WiFi",
		Brand: "Daikin",
		Description: `Cooling:  6.0 kw
Heating:  7.2 kw

Program Dry Function
Heavy duty Purification
Ultra Compact 
Super Quiet 

Dimensions (HxWxD)
Indoor:295x798x185
Outdoor:695x930x350

Indoor Sound Level (H/SL)
Cool (dBA)	48/33
Heat (dBA)	48/33
Outdoor Sound Level (H/SL)	
Cool (dBA)	49/45
Heat (dBA)	52/45`,
		Model:           "FTXJ60T-K",
		Price:           "$3089+GST",
		CoolingCapacity: "6.0kW",
		HeatingCapacity: "7.2kW",
		HasWifi:         true,
		Series:          "Other",
	},
	{
		ID:    "midea-aurora-25-31kw-with-wifi-mfab26nb",
		Name:  "Midea Aurora 2.5/3.1kw with Wifi",
		Brand: "Midea",
		Description: `2.5kw Cooling, 
3.2kw Heating Capacity 

with Wi-Fi control.
5 years manufacturer warranty 

Indoor (802 x 189 x 297)(mm)
Outdoor (800 x 333 x 554)(WxDXH)`,
		Model:           "MFAB26NB",
		Price:           "$1215+GST",
		CoolingCapacity: "",
		HeatingCapacity: "",
		HasWifi:         true,
		Series:          "Other",
	},
	{
		ID:    "midea-aurora-35-40kw-with-wifi-mfab35nb",
		Name:  "Midea Aurora 3.5/4.0kw with Wifi",
		Brand: "Midea",
		Description: `3.5kw Cooling, 
4.0kw Heating Capacity 

with Wi-Fi control.
5 years manufacturer warranty 

Indoor (802 x 189 x 297)(mm)
Outdoor (800 x 333 x 554)(WxDXH)`,
		Model:           "MFAB35NB",
		Price:           "$1474+ GST",
		CoolingCapacity: "",
		HeatingCapacity: "",
		HasWifi:         true,
		Series:          "Other",
	},
	{
		ID:    "midea-aurora-50-60kw-with-wifi-mfam50nb",
		Name:  "Midea Aurora 5.0/6.0kw with Wifi",
		Brand: "Midea",
		Description: `5.0kw Cooling, 
6.0kw Heating Capacity 

with Wi-Fi control.
5 years manufacturer warranty 

Indoor (1080 x 226 x 335)(mm)
Outdoor (890 x 342 x673)(WxDXH)`,
		Model:           "MFAM50NB",
		Price:           "$1879+GST",
		CoolingCapacity: "",
		HeatingCapacity: "",
		HasWifi:         true,
		Series:          "Other",
	},
	{
		ID:    "midea-aurora-71-80kw-with-wifi-mfab70nb",
		Name:  "Midea Aurora 7.1/8.0kw with Wifi",
		Brand: "Midea",
		Description: `7.1kw Cooling, 
8.0kw Heating Capacity 

with Wi-Fi control.
5 years manufacturer warranty 

Indoor (1080 x 226 x 335)(mm)
Outdoor (890 x 342 x673)(WxDXH)`,
		Model:           "MFAB70NB",
		Price:           "$2206+GST",
		CoolingCapacity: "",
		HeatingCapacity: "",
		HasWifi:         true,
		Series:          "Other",
	},
	{
		ID:    "midea-aurora-90-10kw-with-wifi-mfab90nb",
		Name:  "Midea Aurora 9.0/10kw with Wifi",
		Brand: "Midea",
		Description: `10kw heating, 9.0kw cooling 
Capacity with Wi-Fi control.

5 years manufacturer warranty 
Indoor (1259 x 282 x 362)(mm)
Outdoor (946 x 410 810)(WxDXH)`,
		Model:           "MFAB90NB",
		Price:           "$2790+GST",
		CoolingCapacity: "",
		HeatingCapacity: "",
		HasWifi:         true,
		Series:          "Other",
	},
	{
		ID:    "mhi-ciara-15-20kw-built-in-wifi-dxk05ztla",
		Name:  "MHI Ciara 1.5/2.0kw built-In Wifi",
		Brand: "MHI",
		Description: `1.5kw cooling
2.0kw heating 
Room size: 12 - 18m² cooling  
/ 10 - 16m² heating

Wi-Fi built-in as standard! 

The innovative 1.5kW Ciara™ split system 

Dimensions (H x W x D):
INDOOR: 294 x 798 x 210mm
OUTDOOR: 540 x 645 x 275mm`,
		Model:           "DXK05ZTLA",
		Price:           "$1457+GST",
		CoolingCapacity: "",
		HeatingCapacity: "",
		HasWifi:         true,
		Series:          "Other",
	},
	{
		ID:    "mhi-ciara-25-30kw-built-in-wifi-dxk09ztla-set",
		Name:  "MHI Ciara 2.5/3.0kw Built-in Wifi",
		Brand: "MHI",
		Description: `2.5kw cooling
3.0kw heating 

Wi-Fi built-in as standard! 

The innovative Ciara™ split system 

Dimensions (HxWxD)
INDOOR: 294x798x210
OUTDOOR: 540x645x275`,
		Model:           "DXK09ZTLA-SET",
		Price:           "$1847+GST",
		CoolingCapacity: "",
		HeatingCapacity: "",
		HasWifi:         true,
		Series:          "Other",
	},
	{
		ID:    "mhi-ciara-33-38kw-built-in-wifi-dxk12ztla",
		Name:  "MHI Ciara 3.3/3.8kw Built-in Wifi",
		Brand: "MHI",
		Description: `3.3kw cooling
3.8kw heating 

Wi-Fi built-in as standard! 

The innovative Ciara™ split system 

Dimensions (HxWxD)
INDOOR: 294x798x210
OUTDOOR: 540x645x275`,
		Model:           "DXK12ZTLA",
		Price:           "$2001+GST",
		CoolingCapacity: "",
		HeatingCapacity: "",
		HasWifi:         true,
		Series:          "Other",
	},
	{
		ID:    "mhi-ciara-50-58kw-built-in-wifi-dxk18ztla",
		Name:  "MHI Ciara 5.0/5.8kw Built-in Wifi",
		Brand: "MHI",
		Description: `5.0kw cooling
5.8kw heating 

Wi-Fi built-in as standard! 

The innovative Ciara™ split system 

Dimensions (HxWxD)
INDOOR: 294x798x210
OUTDOOR: 595x780x290`,
		Model:           "DXK18ZTLA",
		Price:           "$2379+GST",
		CoolingCapacity: "",
		HeatingCapacity: "",
		HasWifi:         true,
		Series:          "Other",
	},
	{
		ID:    "mhi-ciara-71-80kw-built-in-wifi-dxk24tla-set",
		Name:  "MHI Ciara 7.1/8.0kw Built-in Wifi",
		Brand: "MHI",
		Description: `7.1kw cooling
8.0kw heating 

Wi-Fi built-in as standard! 

The innovative Ciara™ split system 

Dimensions (HxWxD)
INDOOR: 294x798x230
OUTDOOR: 640x800(+71)x290`,
		Model:           "DXK24TLA-SET",
		Price:           "$2826+GST",
		CoolingCapacity: "",
		HeatingCapacity: "",
		HasWifi:         true,
		Series:          "Other",
	},
	{
		ID:    "samsung-25-30kw-ai-smart-airise-windfree-airconditioner-wall-mount---heat-pump-ar09bxecnwknsa",
		Name:  "Samsung 2.5/3.0kw AI Smart AIRISE WindFree™ AirConditioner Wall-mount - Heat Pump",
		Brand: "Samsung",
		Description: `Cooling, 2.5 kW/ Heating, 3.2 kW
Covers up to 28 m2

Built in WIFI
AI Function 
Wind-free technology 
10 years on compressor/ 5 years others warranty 

Noise Level (Indoor, High/Low, dBA)
38 / 17 dBA
Noise Level (Outdoor, High/Low, dBA)
45 dBA

Net Dimension (Indoor, WxHxD, ㎜*㎜*㎜)
889*299*215 mm
Net Dimension (Outdoor, WxHxD, ㎜*㎜*㎜)
790*548*285 mm`,
		Model:           "AR09BXECNWKNSA",
		Price:           "$1675+GST",
		CoolingCapacity: "",
		HeatingCapacity: "",
		HasWifi:         true,
		Series:          "Other",
	},
	{
		ID:    "samsung-35-40kw-ai-smart-airise-windfree-airconditioner-wall-mount---heat-pump-ar12bxecnwknsa",
		Name:  "Samsung 3.5/4.0kw AI Smart AIRISE WindFree™ AirConditioner Wall-mount - Heat Pump",
		Brand: "Samsung",
		Description: `Cooling, 3.5 kW/ Heating, 4.0 kW
Covers up to 25 - 48 m23

Built in WIFI
AI Function 
Wind-free technology 
10 years on compressor/ 5 years others warranty 

Noise Level (Indoor, High/Low, dBA)
40 / 17 dBA
Noise Level (Outdoor, High/Low, dBA)
46 /17 dBA

Net Dimension (Indoor, WxHxD, ㎜*㎜*㎜)
889*299*215 mm
Net Dimension (Outdoor, WxHxD, ㎜*㎜*㎜)
790*548*285 mm`,
		Model:           "AR12BXECNWKNSA",
		Price:           "$1794+GST",
		CoolingCapacity: "",
		HeatingCapacity: "",
		HasWifi:         true,
		Series:          "Other",
	},
	{
		ID:    "samsung-50-60kw-ai-smart-airise-windfree-airconditioner-wall-mount---heat-pump-ar18bxecnwknsa",
		Name:  "Samsung 5.0/6.0kw AI Smart AIRISE WindFree™ AirConditioner Wall-mount - Heat Pump",
		Brand: "Samsung",
		Description: `Cooling, 5.0 kW/ Heating, 6.0 kW
Covers 35-55m2

Built in WIFI
AI Function 
Wind-free technology 
10 years on compressor/ 5 years others warranty 

Noise Level (Indoor, High/Low, dBA)
41 / 25 dBA
Noise Level (Outdoor, High/Low, dBA)
51 dBA

Net Dimension (Indoor, WxHxD, ㎜*㎜*㎜)
1055*299*215 mm
Net Dimension (Outdoor, WxHxD, ㎜*㎜*㎜)
880*636*310 mm`,
		Model:           "AR18BXECNWKNSA",
		Price:           "$2245+GST",
		CoolingCapacity: "",
		HeatingCapacity: "",
		HasWifi:         true,
		Series:          "Other",
	},
	{
		ID:    "samsung-68-72kw-ai-smart-airise-windfree-airconditioner-wall-mount---heat-pump-ar24bxecnwknsa",
		Name:  "Samsung 6.8/7.2kw AI Smart AIRISE WindFree™ AirConditioner Wall-mount - Heat Pump",
		Brand: "Samsung",
		Description: `Cooling, 6.8kW/ Heating, 7.2kW
Covers 48-72m2

Built in WIFI
AI Function 
Wind-free technology 
10 years on compressor/ 5 years others warranty 

Noise Level (Indoor, High/Low, dBA)
45 /26 dBA
Noise Level (Outdoor, High/Low, dBA)
54 dBA

Net Dimension (Indoor, WxHxD, ㎜*㎜*㎜)
1055*299*215mm
Net Dimension (Outdoor, WxHxD, ㎜*㎜*㎜)
880*636*310 mm`,
		Model:           "AR24BXECNWKNSA",
		Price:           "$2698+GST",
		CoolingCapacity: "",
		HeatingCapacity: "",
		HasWifi:         true,
		Series:          "Other",
	},
	{
		ID:    "samsung-ai-windfree-80-90-kw-ar30bxecnwknsaar30bxecnwkxsa",
		Name:  "Samsung AI windfree 8.0/9.0 Kw",
		Brand: "Samsung",
		Description: `Cooling, 8.0kW/ Heating, 9.0kW
Covers more than 72 m2

Built in WIFI
AI Function 
Wind-free technology 
10 years on compressor/ 5 years others warranty 

Noise Level (Indoor, High/Low, dBA)
47/30 dBA
Noise Level (Outdoor, High/Low, dBA)
57 dBA

Net Dimension (Indoor, WxHxD, ㎜*㎜*㎜)
1055*299*215 mm
Net Dimension (Outdoor, WxHxD, ㎜*㎜*㎜)
940*998*330 mm`,
		Model:           "AR30BXECNWKNSA + AR30BXECNWKXSA",
		Price:           "$3199+GST ",
		CoolingCapacity: "",
		HeatingCapacity: "",
		HasWifi:         true,
		Series:          "Other",
	},
	{
		ID:    "mitsubish-electric-ap25-25-32kw-with-wi-fi-msz-ap25vgkd2",
		Name:  "Mitsubish Electric AP25 2.5/3.2kw with Wi-Fi",
		Brand: "Mitsubishi",
		Description: `Cooling 2.5 kW
Heating 3.2 kW

Built-in Wi-Fi Energy Monitoring for total control over your power use. 

Starting at just 18dBA, it's New Zealand's quietest heat pump ever making it ideal for living rooms and bedrooms. 

With Dual Barrier Coating that prevents dust and dirt build-up on the inner surface,
`,
		Model:           "MSZ-AP25VGKD2",
		Price:           "$2125+GST",
		CoolingCapacity: "",
		HeatingCapacity: "",
		HasWifi:         true,
		Series:          "Other",
	},
	{
		ID:    "mitsubish-electric-ap35-35-37kw-with-wi-fi-",
		Name:  "Mitsubish Electric AP35 3.5/3.7kw with Wi-Fi",
		Brand: "Mitsubishi",
		Description: `Cooling 3.5 kW
Heating 3.7 kW

Built-in Wi-Fi Energy Monitoring for total control over your power use. 

Starting at just 18dBA, it's New Zealand's quietest heat pump ever making it ideal for living rooms and bedrooms. 

With Dual Barrier Coating that prevents dust and dirt build-up on the inner surface,`,
		Model:           "",
		Price:           "$2215+GST ",
		CoolingCapacity: "",
		HeatingCapacity: "",
		HasWifi:         true,
		Series:          "Other",
	},
	{
		ID:    "mitsubish-electric-ap50-50-60kw-with-wi-fi-",
		Name:  "Mitsubish Electric AP50 5.0/6.0kw with Wi-Fi",
		Brand: "Mitsubishi",
		Description: `Cooling 5.0 kW
Heating 6.0 kW

Built-in Wi-Fi Energy Monitoring for total control over your power use. 

Starting at just 18dBA, it's New Zealand's quietest heat pump ever making it ideal for living rooms and bedrooms. 

With Dual Barrier Coating that prevents dust and dirt build-up on the inner surface,`,
		Model:           "",
		Price:           "$2735+GST",
		CoolingCapacity: "",
		HeatingCapacity: "",
		HasWifi:         true,
		Series:          "Other",
	},
	{
		ID:    "mitsubish-electric-ap42-42-54kw-with-wi-fi-",
		Name:  "Mitsubish Electric AP42 4.2/5.4kw with Wi-Fi",
		Brand: "Mitsubishi",
		Description: `Cooling 4.2 kW
Heating 5.4 kW

Built-in Wi-Fi Energy Monitoring for total control over your power use. 

Starting at just 18dBA, it's New Zealand's quietest heat pump ever making it ideal for living rooms and bedrooms. 

With Dual Barrier Coating that prevents dust and dirt build-up on the inner surface,`,
		Model:           "",
		Price:           "$ 2560+GST",
		CoolingCapacity: "",
		HeatingCapacity: "",
		HasWifi:         true,
		Series:          "Other",
	},
	{
		ID:    "mitsubish-electric-ap71-71-80kw-with-wi-fi-",
		Name:  "Mitsubish Electric AP71 7.1/8.0kw with Wi-Fi",
		Brand: "Mitsubishi",
		Description: `Cooling 7.1 kW
Heating 8.0 kW

Built-in Wi-Fi Energy Monitoring for total control over your power use. 

Starting at just 18dBA, it's New Zealand's quietest heat pump ever making it ideal for living rooms and bedrooms. 

With Dual Barrier Coating that prevents dust and dirt build-up on the inner surface,`,
		Model:           "",
		Price:           "$3819+GST",
		CoolingCapacity: "",
		HeatingCapacity: "",
		HasWifi:         true,
		Series:          "Other",
	},
	{
		ID:    "mitsubish-electric-ap80-80-90kw-with-wi-fi-",
		Name:  "Mitsubish Electric AP80 8.0/9.0kw with Wi-Fi",
		Brand: "Mitsubishi",
		Description: `Cooling 8.0kW
Heating 9.0 kW

Built-in Wi-Fi Energy Monitoring for total control over your power use. 

Starting at just 18dBA, it's New Zealand's quietest heat pump ever making it ideal for living rooms and bedrooms. 

With Dual Barrier Coating that prevents dust and dirt build-up on the inner surface,`,
		Model:           "",
		Price:           "$4119+GST",
		CoolingCapacity: "",
		HeatingCapacity: "",
		HasWifi:         true,
		Series:          "Other",
	},
	{
		ID:    "mitsubish-electric-gs25-25-31kwheat-pump-msz-gs25vfd",
		Name:  "Mitsubish Electric GS25 2.5/3.1kwHeat Pump",
		Brand: "Mitsubishi",
		Description: `Cooling: 2.5 kW, Heating: 3.1 kW

optional upgrades, from Wi-Fi Control`,
		Model:           "MSZ-GS25VFD",
		Price:           "$1834+GST",
		CoolingCapacity: "2.5kW",
		HeatingCapacity: "3.1kW",
		HasWifi:         true,
		Series:          "Other",
	},
	{
		ID:    "mitsubish-electric-gs580-78-90kwheat-pump-msz-gs80vfd",
		Name:  "Mitsubish Electric GS580 7.8/9.0kwHeat Pump",
		Brand: "Mitsubishi",
		Description: `Cooling: 7.8 kW, Heating: 9.0 kW

optional upgrades, from Wi-Fi Control`,
		Model:           "MSZ-GS80VFD",
		Price:           "$3674+GST",
		CoolingCapacity: "7.8kW",
		HeatingCapacity: "9.0kW",
		HasWifi:         true,
		Series:          "Other",
	},
	{
		ID:    "haire-pinnacle-35-37kw-heat-pump-as35pbdhra-set",
		Name:  "Haire Pinnacle 3.5/3.7kw heat pump",
		Brand: "Haire",
		Description: `3.5kw cooling/3.7kw heating 
Wi-Fi and voice control.

Noise indoor max: 40dBA
          Outdoor max: 51dBA

Dimension 
Indoor:292x805x200
Outdoor: 800x553x275`,
		Model:           "AS35PBDHRA-SET",
		Price:           "$1504+GST",
		CoolingCapacity: "",
		HeatingCapacity: "",
		HasWifi:         true,
		Series:          "Other",
	},
	{
		ID:    "haire-pinnacle-25-30-kw-with-wifi-as26pbdhra-set",
		Name:  "Haire pinnacle 2.5/3.0 kw with WIFI",
		Brand: "Haire",
		Description: `2.5kw cooling/3.0kw heating 
Wi-Fi and voice control.

Noise 
indoor max: 40dBA
Outdoor max: 51dBA

Dimension 
Indoor:292x805x200
Outdoor: 800x553x275`,
		Model:           "AS26PBDHRA-SET",
		Price:           "$1455+GST",
		CoolingCapacity: "",
		HeatingCapacity: "",
		HasWifi:         true,
		Series:          "Other",
	},
	{
		ID:    "haire-quartz-71-80kw-heat-pump-as71qeehra-set",
		Name:  "Haire Quartz 7.1/8.0kw heat pump",
		Brand: "Haire",
		Description: `Cooling:  7.1 kW
Heating:  8.0 kW

Built-in WiFi
Self-Clean function 
Whisper Quiet 

Dimensions (HxWxD)
Indoor:345x1106x240
Outdoor:705x890x340`,
		Model:           "AS71QEEHRA-SET",
		Price:           "$2478+GST",
		CoolingCapacity: "7.1kW",
		HeatingCapacity: "8.0kW",
		HasWifi:         true,
		Series:          "Other",
	},
	{
		ID:    "haire-quartz-50-60kw-heat-pump-as50qdehra-set",
		Name:  "Haire Quartz 5.0/6.0kw heat pump",
		Brand: "Haire",
		Description: `Cooling:  5.0 kW
Heating:  6.0 kW

Built-in WiFi
Self-Clean function 
Whisper Quiet 

Dimensions (HxWxD)
Indoor:320x970x220
Outdoor:705x890x340`,
		Model:           "AS50QDEHRA-SET",
		Price:           "$2152+GST",
		CoolingCapacity: "5.0kW",
		HeatingCapacity: "6.0kW",
		HasWifi:         true,
		Series:          "Other",
	},
	{
		ID:    "haire-pinnacle-50-55kw-heat-pump-as53pddhra-set",
		Name:  "Haire Pinnacle 5.0/5.5kw heat pump",
		Brand: "Haire",
		Description: `5.0kw cooling/5.5kw heating 
Wi-Fi and voice control.

Noise indoor max: 47dBA
          Outdoor max: 66dBA

Dimension 
Indoor:320x970x220
Outdoor: 890x705x340`,
		Model:           "AS53PDDHRA-SET",
		Price:           "$2080+GST",
		CoolingCapacity: "",
		HeatingCapacity: "",
		HasWifi:         true,
		Series:          "Other",
	},
	{
		ID:    "haire-pinnacle-70-76kw-heat-pump-as71pddhra-set",
		Name:  "Haire Pinnacle 7.0/7.6kw heat pump",
		Brand: "Haire",
		Description: `7.0 cooling/7.6kw heating 
Wi-Fi and voice control.

Noise indoor max: 48dBA
          Outdoor max: 67dBA

Dimension 
Indoor:320x970x220
Outdoor: 890x705x340`,
		Model:           "AS71PDDHRA-SET",
		Price:           "$2381+GST",
		CoolingCapacity: "",
		HeatingCapacity: "",
		HasWifi:         true,
		Series:          "Other",
	},
	{
		ID:    "haire-quartz-90-95kw-heat-pump-as90qfdhra-set",
		Name:  "Haire Quartz 9.0/9.5kw heat pump",
		Brand: "Haire",
		Description: `Cooling:  9.0 kW
Heating:  9.5 kW

Built-in WiFi
Self-Clean function 
Whisper Quiet 

Dimensions (HxWxD)
Indoor:365x1316x275
Outdoor:815x905x370`,
		Model:           "AS90QFDHRA-SET",
		Price:           "$2999+GST",
		CoolingCapacity: "9.0kW",
		HeatingCapacity: "9.5kW",
		HasWifi:         true,
		Series:          "Other",
	},
	{
		ID:    "haire-quartz-25-32kw-heat-pump-as25qcehra-set",
		Name:  "Haire Quartz 2.5/3.2kw Heat pump",
		Brand: "Haire",
		Description: `Cooling:  2.5 kW
Heating:  3.2kW

Built-in WiFi
Self-Clean function 
Whisper Quiet 

Dimensions (HxWxD)
Indoor:307x875x217
Outdoor:553x800x275`,
		Model:           "AS25QCEHRA-SET",
		Price:           "$1610+GST",
		CoolingCapacity: "2.5kW",
		HeatingCapacity: "3.2kW",
		HasWifi:         true,
		Series:          "Other",
	},
	{
		ID:    "haire-quartz-35-37kw-heat-pump-as35qcehra-set",
		Name:  "Haire Quartz 3.5/3.7kw heat pump",
		Brand: "Haire",
		Description: `Cooling:  3.5 kW
Heating:  3.7 kW

Built-in WiFi
Self-Clean function 
Whisper Quiet 

Dimensions (HxWxD)
Indoor:307x875x217
Outdoor:553x800x275`,
		Model:           "AS35QCEHRA-SET",
		Price:           "$1664+GST",
		CoolingCapacity: "3.5kW",
		HeatingCapacity: "3.7kW",
		HasWifi:         true,
		Series:          "Other",
	},
	{
		ID:    "haire-quartz-60-70kw-heat-pump-",
		Name:  "Haire Quartz 6.0/7.0kw heat pump",
		Brand: "Haire",
		Description: `Cooling:  7.1 kW
Heating:  8.0 kW

Built-in WiFi
Self-Clean function 
Whisper Quiet 

Dimensions (HxWxD)
Indoor:345x1106x240
Outdoor:705x890x340`,
		Model:           "",
		Price:           "$2332+GST",
		CoolingCapacity: "7.1kW",
		HeatingCapacity: "8.0kW",
		HasWifi:         true,
		Series:          "Other",
	},
	{
		ID:    "lg-standard-63-73-kw-high-wall-ws24wu",
		Name:  "LG STANDARD 6.3/7.3 KW HIGH WALL",
		Brand: "LG",
		Description: `Cooling: 6.3kw, Heating: 7.3kw

Built in Wi-Fi so you can control your Air Conditioner remotely

Control your energy usage with Active Energy Control on the LG ThinQ® app

Google Assistant

10 Year Compressor Parts Warranty for peace of mind`,
		Model:           "WS24WU",
		Price:           "$2525+GST ",
		CoolingCapacity: "6.3kW",
		HeatingCapacity: "7.3kW",
		HasWifi:         true,
		Series:          "Standard",
	},
	{
		ID:    "lg-deluxe-85kw---90kw-high-wall-wh30sr-1-wh30sr",
		Name:  "LG DELUXE 8.5KW / 9.0KW HIGH WALL WH30SR-1",
		Brand: "LG",
		Description: `Cooling:8.5kw, heating:9.0kw

Key Features
Built-in Wi-Fi Smart Control
Energy Display & Monitoring
Active Energy Control
Plasmaster™ Ioniser Plus
10 Year Compressor Parts Warranty`,
		Model:           "WH30SR",
		Price:           "$3234+GST",
		CoolingCapacity: "8.5kW",
		HeatingCapacity: "9.0kW",
		HasWifi:         true,
		Series:          "Other",
	},
	{
		ID:    "lg-deluxe-94-103kw-high-wall-wh34sr",
		Name:  "LG Deluxe 9.4/10.3KW High Wall",
		Brand: "LG",
		Description: `Cooling: 9.4kw, Heating:10.3kw

Key Features
Built-in Wi-Fi Smart Control
Energy Display & Monitoring
Active Energy Control
Plasmaster™ Ioniser Plus
10 Year Compressor Parts Warranty`,
		Model:           "WH34SR",
		Price:           "$3697+GST",
		CoolingCapacity: "9.4kW",
		HeatingCapacity: "10.3kW",
		HasWifi:         true,
		Series:          "Other",
	},
	{
		ID:    "lg-standard-26kw---32kw-high-wall-ws09tws",
		Name:  "LG STANDARD 2.6KW / 3.2KW HIGH WALL",
		Brand: "LG",
		Description: `Cooling: 2.6kw, Heating: 3.3kw

Built in Wi-Fi so you can control your Air Conditioner remotely

Control your energy usage with Active Energy Control on the LG ThinQ® app

Google Assistant

10 Year Compressor Parts Warranty for peace of mind`,
		Model:           "WS09TWS",
		Price:           "$1707+GST",
		CoolingCapacity: "2.6kW",
		HeatingCapacity: "3.3kW",
		HasWifi:         true,
		Series:          "Standard",
	},
	{
		ID:    "lg-standard-34-40-kw-high-wall-ws12twn",
		Name:  "LG STANDARD 3.4/4.0 Kw HIGH WALL",
		Brand: "LG",
		Description: `Cooling: 3.4kw, Heating: 4.0kw

Built in Wi-Fi so you can control your Air Conditioner remotely

Control your energy usage with Active Energy Control on the LG ThinQ® app

Google Assistant

10 Year Compressor Parts Warranty for peace of mind`,
		Model:           "WS12TWN",
		Price:           "$2003+GST",
		CoolingCapacity: "3.4kW",
		HeatingCapacity: "4.0kW",
		HasWifi:         true,
		Series:          "Standard",
	},
	{
		ID:    "lg-standard-48kw---59kw-high-wall-ws18tws",
		Name:  "LG STANDARD 4.8KW / 5.9KW HIGH WALL",
		Brand: "LG",
		Description: `$2179+GST incl Standard back-to-back Installation within 3 meters 

Cooling: 4.8kw, Heating: 5.9kw

Built in Wi-Fi so you can control your Air Conditioner remotely

Control your energy usage with Active Energy Control on the LG ThinQ® app

Google Assistant

10 Year Compressor Parts Warranty for peace of mind`,
		Model:           "WS18TWS",
		Price:           "$2179+GST",
		CoolingCapacity: "4.8kW",
		HeatingCapacity: "5.9kW",
		HasWifi:         true,
		Series:          "Standard",
	},
	{
		ID:    "lg-standard-71kw---77kw-high-wall-ws24sl-23",
		Name:  "LG STANDARD 7.1KW / 7.7KW HIGH WALL",
		Brand: "LG",
		Description: `Key Features
Ideal for large rooms or areas in your home
Built in Wi-Fi so you can control your Air Conditioner remotely
10 Year Compressor Parts Warranty
`,
		Model:           "WS24SL-23",
		Price:           "$2671+GST",
		CoolingCapacity: "",
		HeatingCapacity: "",
		HasWifi:         true,
		Series:          "Standard",
	},
	{
		ID:    "panasonic-developer-25-30kw-heat-pump-rz25xkr",
		Name:  "Panasonic Developer 2.5/3.0kw heat pump",
		Brand: "Panasonic",
		Description: `Cooling:  2.5 kw
Heating:  3.0 kw

Dimensions (HxWxD)
Indoor:290x779x209
Outdoor:542x780x289

Indoor Sound Level (dBA):40 
Outdoor Sound Level (dBA):49`,
		Model:           "RZ25XKR",
		Price:           "$1845+GST",
		CoolingCapacity: "2.5kW",
		HeatingCapacity: "3.0kW",
		HasWifi:         false,
		Series:          "Other",
	},
	{
		ID:    "panasonic-aero-80-90kw-with-wifi-heat-pump-z80xkr",
		Name:  "Panasonic Aero 8.0/9.0kw with Wifi heat pump",
		Brand: "Panasonic",
		Description: `Cooling:  8.0 kw
Heating:  9.0 kw

Built-in WIFI
Nanoe-G Air purifying system 

Dimensions (HxWxD)
Indoor:295x1040x244
Outdoor:795x875x320

Indoor Sound Level (dBA):51
Outdoor Sound Level (dBA):55`,
		Model:           "Z80XKR",
		Price:           "$3486+GST",
		CoolingCapacity: "8.0kW",
		HeatingCapacity: "9.0kW",
		HasWifi:         true,
		Series:          "Other",
	},
	{
		ID:    "panasonic-aero-25-30kw-with-wifi-heat-pump-z25xkr-1",
		Name:  "Panasonic Aero 2.5/3.0kw with WIFI heat pump",
		Brand: "Panasonic",
		Description: `Cooling:  2.5 kw
Heating:  3.0 kw

Built-in WIFI
Nanoe-G Air purifying system 

Dimensions (HxWxD)
Indoor:290x779x209
Outdoor:542x780x289

Indoor Sound Level (dBA):40 
Outdoor Sound Level (dBA):48`,
		Model:           "Z25XKR-1",
		Price:           "$1985+GST",
		CoolingCapacity: "2.5kW",
		HeatingCapacity: "3.0kW",
		HasWifi:         true,
		Series:          "Other",
	},
	{
		ID:    "panasonic-aero-35-40kw-with-wifi-heat-pump-z35xkr",
		Name:  "Panasonic Aero 3.5/4.0kw with Wifi heat pump",
		Brand: "Panasonic",
		Description: `Cooling:  3.5 kw
Heating:  4.0 kw

Built-in WIFI
Nanoe-G Air purifying system 

Dimensions (HxWxD)
Indoor:290x779x209
Outdoor:542x780x289

Indoor Sound Level (dBA):44
Outdoor Sound Level (dBA):49`,
		Model:           "Z35XKR",
		Price:           "$2027+GST",
		CoolingCapacity: "3.5kW",
		HeatingCapacity: "4.0kW",
		HasWifi:         true,
		Series:          "Other",
	},
	{
		ID:    "panasonic-aero-71-80kw-with-wifi-heat-pump-z71xkr",
		Name:  "Panasonic Aero 7.1/8.0kw with Wifi heat pump",
		Brand: "Panasonic",
		Description: `Cooling:  7.1 kw
Heating:  8.0 kw

Built-in WIFI
Nanoe-G Air purifying system 

Dimensions (HxWxD)
Indoor:295x1040x244
Outdoor:695x875x320

Indoor Sound Level (dBA):49
Outdoor Sound Level (dBA):54`,
		Model:           "Z71XKR",
		Price:           "$3072+GST",
		CoolingCapacity: "7.1kW",
		HeatingCapacity: "8.0kW",
		HasWifi:         true,
		Series:          "Other",
	},
	{
		ID:    "panasonic-developer-35-40kw-heat-pump-rz35xkr",
		Name:  "Panasonic Developer 3.5/4.0kw heat pump",
		Brand: "Panasonic",
		Description: `Cooling:  3.5 kw
Heating:  4.0 kw

Dimensions (HxWxD)
Indoor:290x779x209
Outdoor:542x780x289

Indoor Sound Level max(dBA):44
Outdoor Sound Level max:(dBA):49`,
		Model:           "RZ35XKR",
		Price:           "$1952+GST ",
		CoolingCapacity: "3.5kW",
		HeatingCapacity: "4.0kW",
		HasWifi:         false,
		Series:          "Other",
	},
	{
		ID:    "panasonic-developer-42-51kw-heat-pump-rz42xkr",
		Name:  "Panasonic Developer 4.2/5.1kw heat pump",
		Brand: "Panasonic",
		Description: `Cooling:  4.2 kw
Heating:  5.1 kw

Dimensions (HxWxD)
Indoor:290x779x209
Outdoor:619x824x299

Indoor Sound Level (dBA):44
Outdoor Sound Level (dBA):49`,
		Model:           "RZ42XKR",
		Price:           "$2198+GST",
		CoolingCapacity: "4.2kW",
		HeatingCapacity: "5.1kW",
		HasWifi:         false,
		Series:          "Other",
	},
	{
		ID:    "panasonic-developer-50-60kw-heat-pump-rz50xkr",
		Name:  "Panasonic Developer 5.0/6.0kw heat pump",
		Brand: "Panasonic",
		Description: `Cooling:  5.0 kw
Heating:  6.0 kw

Dimensions (HxWxD)
Indoor:290x779x209
Outdoor:619x824x299

Indoor Sound Level (dBA):44
Outdoor Sound Level (dBA):48`,
		Model:           "RZ50XKR",
		Price:           "$2328+GST",
		CoolingCapacity: "5.0kW",
		HeatingCapacity: "6.0kW",
		HasWifi:         false,
		Series:          "Other",
	},
	{
		ID:    "panasonic-developer-60-65kw-heat-pump-rz60xkr",
		Name:  "Panasonic Developer 6.0/6.5kw heat pump",
		Brand: "Panasonic",
		Description: `Cooling:  6.0 kw
Heating:  6.5 kw

Dimensions (HxWxD)
Indoor:295x1047x244
Outdoor:619x824x299

Indoor Sound Level (dBA):47
Outdoor Sound Level (dBA):49`,
		Model:           "RZ60XKR",
		Price:           "$2617+GST",
		CoolingCapacity: "6.0kW",
		HeatingCapacity: "6.5kW",
		HasWifi:         false,
		Series:          "Other",
	},
	{
		ID:    "panasonic-developer-71-80kw-heat-pump-rz71xkr",
		Name:  "Panasonic Developer 7.1/8.0kw heat pump",
		Brand: "Panasonic",
		Description: `Cooling:  7.1 kw
Heating:  8.0 kw

Dimensions (HxWxD)
Indoor:295x1047x244
Outdoor:695x875x320

Indoor Sound Level (dBA):49
Outdoor Sound Level (dBA):54`,
		Model:           "RZ71XKR",
		Price:           "$2885+GST",
		CoolingCapacity: "7.1kW",
		HeatingCapacity: "8.0kW",
		HasWifi:         false,
		Series:          "Other",
	},
	{
		ID:    "panasonic-developer-80-90kw-heat-pump-rz80xkr",
		Name:  "Panasonic Developer 8.0/9.0kw heat pump",
		Brand: "Panasonic",
		Description: `Cooling:  8.0 kw
Heating:  9.0 kw

Dimensions (HxWxD)
Indoor:295x1047x244
Outdoor:795x875x320

Indoor Sound Level (dBA):51
Outdoor Sound Level (dBA):55`,
		Model:           "RZ80XKR",
		Price:           "$3375+GST",
		CoolingCapacity: "8.0kW",
		HeatingCapacity: "9.0kW",
		HasWifi:         false,
		Series:          "Other",
	},
	{
		ID:    "panasonic-aero-42-51kw-with-wifi-heat-pump-z42xkr",
		Name:  "Panasonic Aero 4.2/5.1kw with Wifi heat pump",
		Brand: "Panasonic",
		Description: `Cooling:  3.5 kw
Heating:  4.0 kw

Built-in WIFI
Nanoe-G Air purifying system 

Dimensions (HxWxD)
Indoor:290x779x209
Outdoor:542x780x289

Indoor Sound Level (dBA):44
Outdoor Sound Level (dBA):49`,
		Model:           "Z42XKR",
		Price:           "$2331+GST",
		CoolingCapacity: "3.5kW",
		HeatingCapacity: "4.0kW",
		HasWifi:         true,
		Series:          "Other",
	},
	{
		ID:    "panasonic-aero-50-60kw-with-wifi-heat-pump-z50xkr",
		Name:  "Panasonic Aero 5.0/6.0kw with Wifi heat pump",
		Brand: "Panasonic",
		Description: `Cooling:  5.0 kw
Heating:  6.0 kw

Built-in WIFI
Nanoe-G Air purifying system 

Dimensions (HxWxD)
Indoor:290x779x209
Outdoor:619x824x299

Indoor Sound Level (dBA):44
Outdoor Sound Level (dBA):49`,
		Model:           "Z50XKR",
		Price:           "$2465+GST ",
		CoolingCapacity: "5.0kW",
		HeatingCapacity: "6.0kW",
		HasWifi:         true,
		Series:          "Other",
	},
	{
		ID:    "panasonic-aero-60-72kw-with-wifi-heat-pump-z60xkr",
		Name:  "Panasonic Aero 6.0/7.2kw with Wifi heat pump",
		Brand: "Panasonic",
		Description: `Cooling:  6.0 kw
Heating:  7.2 kw

Built-in WIFI
Nanoe-G Air purifying system 

Dimensions (HxWxD)
Indoor:295x1040x244
Outdoor:695x875x320

Indoor Sound Level (dBA):49
Outdoor Sound Level (dBA):54`,
		Model:           "Z60XKR",
		Price:           "$2802+GST",
		CoolingCapacity: "6.0kW",
		HeatingCapacity: "7.2kW",
		HasWifi:         true,
		Series:          "Other",
	},
}
