package seed

// DemoProduct is one entry of the fixed demo catalog. BasePrice is the
// three-month price in a region with multiplier 1.
type DemoProduct struct {
	Name        string
	Description string
	SKU         string
	Detail      string
	Attributes  [][2]string
	BasePrice   int
}

// DemoCatalog lists the products created on first startup, in id order.
var DemoCatalog = []DemoProduct{
	// Laptops
	{
		Name: "MacBook Pro 14", Description: "Latest MacBook Pro with M2 chip", SKU: "MB-PRO-14",
		Detail:     "Perfect for developers and creative professionals",
		Attributes: [][2]string{{"Processor", "M2 Pro"}, {"RAM", "16GB"}, {"Storage", "512GB SSD"}, {"Display", "14-inch Liquid Retina XDR"}},
		BasePrice:  1200,
	},
	{
		Name: "Dell XPS 13", Description: "Premium Windows Ultrabook", SKU: "DELL-XPS-13",
		Detail:     "Compact and powerful laptop for professionals",
		Attributes: [][2]string{{"Processor", "Intel i7-1260P"}, {"RAM", "16GB"}, {"Storage", "512GB SSD"}, {"Display", "13.4-inch 4K Touch"}},
		BasePrice:  1000,
	},
	{
		Name: "ThinkPad X1 Carbon", Description: "Business-class laptop", SKU: "TP-X1-CARBON",
		Detail:     "Durable and reliable business laptop",
		Attributes: [][2]string{{"Processor", "Intel i7-1270P"}, {"RAM", "32GB"}, {"Storage", "1TB SSD"}, {"Display", "14-inch WQHD"}},
		BasePrice:  1100,
	},

	// Monitors
	{
		Name: "LG UltraFine 27", Description: "4K Professional Monitor", SKU: "LG-UF-27",
		Detail:     "Perfect for content creation",
		Attributes: [][2]string{{"Resolution", "3840x2160"}, {"Panel", "IPS"}, {"Response Time", "5ms"}, {"Refresh Rate", "60Hz"}},
		BasePrice:  400,
	},
	{
		Name: "Dell Ultrasharp 32", Description: "Professional 4K Monitor", SKU: "DELL-US-32",
		Detail:     "Ideal for professional work",
		Attributes: [][2]string{{"Resolution", "3840x2160"}, {"Panel", "IPS"}, {"Response Time", "5ms"}, {"Color Gamut", "99% sRGB"}},
		BasePrice:  500,
	},
	{
		Name: "Samsung Odyssey G7", Description: "Gaming Monitor", SKU: "SAM-OD-G7",
		Detail:     "Curved gaming monitor with high refresh rate",
		Attributes: [][2]string{{"Resolution", "2560x1440"}, {"Panel", "VA"}, {"Refresh Rate", "240Hz"}, {"Curve", "1000R"}},
		BasePrice:  600,
	},

	// Keyboards
	{
		Name: "Keychron K2", Description: "Wireless Mechanical Keyboard", SKU: "KEY-K2",
		Detail:     "Compact wireless mechanical keyboard",
		Attributes: [][2]string{{"Switch Type", "Gateron Brown"}, {"Layout", "75%"}, {"Connectivity", "Bluetooth/USB-C"}, {"Backlight", "RGB"}},
		BasePrice:  80,
	},
	{
		Name: "Logitech MX Keys", Description: "Premium Wireless Keyboard", SKU: "LOG-MX-KEYS",
		Detail:     "Premium typing experience",
		Attributes: [][2]string{{"Type", "Scissor Switch"}, {"Layout", "Full-size"}, {"Connectivity", "Bluetooth/USB"}, {"Battery Life", "10 days with backlight"}},
		BasePrice:  100,
	},
	{
		Name: "Ducky One 2", Description: "RGB Mechanical Keyboard", SKU: "DUCKY-ONE2",
		Detail:     "High-quality mechanical keyboard",
		Attributes: [][2]string{{"Switch Type", "Cherry MX Blue"}, {"Layout", "TKL"}, {"Keycaps", "PBT Double-shot"}, {"Backlight", "RGB"}},
		BasePrice:  110,
	},

	// Mice
	{
		Name: "Logitech MX Master 3", Description: "Premium Wireless Mouse", SKU: "LOG-MX3",
		Detail:     "Advanced wireless mouse for productivity",
		Attributes: [][2]string{{"Sensor", "Darkfield"}, {"DPI", "4000"}, {"Buttons", "7"}, {"Battery Life", "70 days"}},
		BasePrice:  90,
	},
	{
		Name: "Razer DeathAdder V2", Description: "Gaming Mouse", SKU: "RAZ-DA-V2",
		Detail:     "Popular gaming mouse",
		Attributes: [][2]string{{"Sensor", "Focus+ Optical"}, {"DPI", "20000"}, {"Buttons", "8"}, {"Weight", "82g"}},
		BasePrice:  70,
	},
	{
		Name: "Glorious Model O", Description: "Lightweight Gaming Mouse", SKU: "GLO-MO",
		Detail:     "Ultra-lightweight gaming mouse",
		Attributes: [][2]string{{"Sensor", "PixArt PMW-3360"}, {"Weight", "67g"}, {"Cable", "Ascended Cord"}, {"RGB", "Yes"}},
		BasePrice:  60,
	},

	// Accessories
	{
		Name: "CalDigit TS4", Description: "Thunderbolt 4 Dock", SKU: "CAL-TS4",
		Detail:     "Premium Thunderbolt 4 docking station",
		Attributes: [][2]string{{"Ports", "18"}, {"Power Delivery", "98W"}, {"Display Support", "Up to 8K"}, {"Ethernet", "2.5Gbps"}},
		BasePrice:  300,
	},
	{
		Name: "Sony WH-1000XM4", Description: "Wireless Noise-Cancelling Headphones", SKU: "SONY-WH4",
		Detail:     "Premium wireless headphones",
		Attributes: [][2]string{{"Battery Life", "30 hours"}, {"Noise Cancelling", "Active"}, {"Bluetooth", "5.0"}, {"Codecs", "LDAC, AAC"}},
		BasePrice:  350,
	},
	{
		Name: "Logitech Brio", Description: "4K Webcam", SKU: "LOG-BRIO",
		Detail:     "Professional 4K webcam",
		Attributes: [][2]string{{"Resolution", "4K"}, {"FPS", "60"}, {"HDR", "Yes"}, {"FOV", "90°"}},
		BasePrice:  200,
	},
	{
		Name: "Samsung T7", Description: "Portable SSD", SKU: "SAM-T7",
		Detail:     "Fast portable storage",
		Attributes: [][2]string{{"Capacity", "1TB"}, {"Interface", "USB 3.2"}, {"Speed", "1050MB/s"}, {"Encryption", "256-bit AES"}},
		BasePrice:  150,
	},
	{
		Name: "Anker PowerCore", Description: "Power Bank", SKU: "ANK-PC",
		Detail:     "High-capacity power bank",
		Attributes: [][2]string{{"Capacity", "26800mAh"}, {"Ports", "3 USB-A"}, {"Input", "USB-C PD"}, {"Output", "60W Max"}},
		BasePrice:  130,
	},
	{
		Name: "Elgato Stream Deck", Description: "Stream Controller", SKU: "ELG-SD",
		Detail:     "Customizable LCD key controller",
		Attributes: [][2]string{{"Keys", "15"}, {"Display", "LCD"}, {"Interface", "USB 2.0"}, {"Software", "Stream Deck App"}},
		BasePrice:  150,
	},
}
