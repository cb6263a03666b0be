package catalog

// FirstNames and LastNames seed user identities. The mix loosely follows
// the anglophone locales the workspace is modeled on.
var FirstNames = []string{
	"James", "Olivia", "Liam", "Emma", "Noah", "Charlotte", "Oliver",
	"Amelia", "Ethan", "Sophia", "Aiden", "Isabella", "Lucas", "Mia",
	"Mason", "Grace", "Logan", "Chloe", "Harry", "Freya", "Jack",
	"Isla", "George", "Poppy", "Oscar", "Evie", "Archie", "Florence",
	"Conor", "Aoife", "Sean", "Niamh", "Cian", "Saoirse", "Declan",
	"Ciara", "Patrick", "Orla", "Finn", "Roisin", "Cooper", "Matilda",
	"Lachlan", "Ruby", "Angus", "Willow", "Hamish", "Daisy",
}

// LastNames seed user surnames.
var LastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia",
	"Miller", "Davis", "Rodriguez", "Martinez", "Taylor", "Wilson",
	"Anderson", "Thomas", "Moore", "Jackson", "Martin", "Lee",
	"Thompson", "White", "Walsh", "O'Brien", "Byrne", "Ryan",
	"O'Connor", "O'Sullivan", "McCarthy", "Murphy", "Kelly", "Doyle",
	"Evans", "Roberts", "Hughes", "Edwards", "Morgan", "Griffiths",
	"Clarke", "Wright", "Robinson", "Harrison", "Mitchell", "Carter",
	"Bennett", "Gray", "Fraser", "Cameron", "Sutherland", "MacDonald",
}
