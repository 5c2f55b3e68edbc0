package cards

// Trait tables mirror the published trait sheet. The empty "select a trait"
// placeholder rows of the UI are not part of the tables; generation skips
// blank values anyway so custom rows can't sneak one in.

var headOptions = []Option{
	{Value: "nonehead", Label: "None"},
	{Value: "halo", Label: "Halo"},
	{Value: "mohawk", Label: "Mohawk"},
	{Value: "partyhat", Label: "Party Hat"},
	{Value: "tophat", Label: "Top Hat"},
	{Value: "devilhorns", Label: "Devil Horns"},
	{Value: "ryoshihead", Label: "Ryoshi"},
	{Value: "beanie", Label: "Beanie"},
	{Value: "piratehead", Label: "Pirate"},
	{Value: "sportband", Label: "Sportband"},
	{Value: "bluehair", Label: "Blue Hair"},
	{Value: "blondehair", Label: "Blonde Hair"},
	{Value: "cowboyhat", Label: "Cowboy Hat"},
	{Value: "cyborghead", Label: "Cyborg"},
	{Value: "clownhead", Label: "Clown"},
	{Value: "armyhead", Label: "Army"},
	{Value: "rasta", Label: "Rasta"},
	{Value: "captainshat", Label: "Captain's Hat"},
	{Value: "university", Label: "University"},
	{Value: "sombrero", Label: "Sombrero"},
	{Value: "wizardhat", Label: "Wizard hat"},
	{Value: "crown", Label: "Crown"},
	{Value: "bathead", Label: "Bat"},
	{Value: "steelhead", Label: "Steel"},
}

var mouthOptions = []Option{
	{Value: "normalmouth", Label: "Normal"},
	{Value: "pipe", Label: "Pipe"},
	{Value: "tongueout", Label: "Tongue Out"},
	{Value: "bone", Label: "Bone"},
	{Value: "partypopper", Label: "Party Popper"},
	{Value: "lollipop", Label: "Lollipop"},
	{Value: "pizza", Label: "Pizza"},
	{Value: "whistle", Label: "Whistle"},
	{Value: "herb", Label: "Herb"},
	{Value: "growl", Label: "Growl"},
	{Value: "bubblegum", Label: "Bubblegum"},
	{Value: "smirk", Label: "Smirk"},
	{Value: "flames", Label: "Flames"},
	{Value: "mask", Label: "Mask"},
	{Value: "clownmouth", Label: "Clown"},
}

var eyesOptions = []Option{
	{Value: "classiceyes", Label: "Classic"},
	{Value: "vr", Label: "VR"},
	{Value: "laservisor", Label: "Laser Visor"},
	{Value: "spirals", Label: "Spirals"},
	{Value: "rockermakeup", Label: "Rocker Makeup"},
	{Value: "crosseyed", Label: "Crosseyed"},
	{Value: "wink", Label: "Wink"},
	{Value: "memeshades", Label: "Meme Shades"},
	{Value: "monocle", Label: "Monocle"},
	{Value: "lasereyes", Label: "Laser Eyes"},
	{Value: "lookforward", Label: "Look Forward"},
	{Value: "red", Label: "Red"},
	{Value: "blackmask", Label: "Black Mask"},
	{Value: "cyborgeyes", Label: "Cyborg"},
	{Value: "glasses", Label: "Glasses"},
	{Value: "piratepatch", Label: "Pirate Patch"},
	{Value: "3dglasses", Label: "3D Glasses"},
	{Value: "lookup", Label: "Look Up"},
}

var clothesOptions = []Option{
	{Value: "noneclothes", Label: "None"},
	{Value: "wizardrobe", Label: "Wizard Robe"},
	{Value: "peacetank", Label: "Peace Tank"},
	{Value: "batclothes", Label: "Bat"},
	{Value: "armyclothes", Label: "Army"},
	{Value: "bluearmor", Label: "Blue Armor"},
	{Value: "sailor", Label: "Sailor"},
	{Value: "overalls", Label: "Overalls"},
	{Value: "jersey", Label: "Jersey"},
	{Value: "ryoshiclothes", Label: "Ryoshi"},
	{Value: "orangegi", Label: "Orange Gi"},
	{Value: "businesssuit", Label: "Business Suit"},
	{Value: "tuxshirt", Label: "Tux Shirt"},
	{Value: "devclothes", Label: "DEV"},
	{Value: "poncho", Label: "Poncho"},
	{Value: "steelclothes", Label: "Steel"},
	{Value: "nofud", Label: "No FUD"},
	{Value: "doctor", Label: "Doctor"},
	{Value: "rockervest", Label: "Rocker Vest"},
	{Value: "clownclothes", Label: "Clown"},
	{Value: "cowboyclothes", Label: "Cowboy"},
	{Value: "scarf", Label: "Scarf"},
	{Value: "astroclothes", Label: "Astro"},
}

var accessoriesOptions = []Option{
	{Value: "noneaccessories", Label: "None"},
	{Value: "earrings", Label: "Earrings"},
	{Value: "dogtags", Label: "Dog Tags"},
	{Value: "leash", Label: "Leash"},
	{Value: "goldchain", Label: "Gold Chain"},
}

var disciplineOptions = []Option{
	{Value: "chewjitsu", Label: "Chewjitsu"},
	{Value: "taekwondoje", Label: "Taekwondoje"},
	{Value: "ryo chi", Label: "Ryo Chi"},
	{Value: "bite thai", Label: "Bite Thai"},
	{Value: "woof chun", Label: "Woof Chun"},
	{Value: "shyjitsu", Label: "Shyjitsu"},
}

var furOptions = []Option{
	{Value: "black", Label: "Black"},
}

// Options returns the trait table for a category, nil for an unknown one.
func Options(cat Category) []Option {
	switch cat {
	case CategoryHead:
		return headOptions
	case CategoryMouth:
		return mouthOptions
	case CategoryEyes:
		return eyesOptions
	case CategoryClothes:
		return clothesOptions
	case CategoryAccessories:
		return accessoriesOptions
	case CategoryDiscipline:
		return disciplineOptions
	case CategoryFur:
		return furOptions
	}
	return nil
}
