package domain

// movementGraph - статический граф перемещений аниматроников.
// Stage -> Dining -> Hallway -> {LeftDoor, RightDoor}.
// Двери поглощающие: единственный преемник - они сами.
var movementGraph = map[Location][]Location{
	LocationStage:     {LocationDining},
	LocationDining:    {LocationHallway},
	LocationHallway:   {LocationLeftDoor, LocationRightDoor},
	LocationLeftDoor:  {LocationLeftDoor},
	LocationRightDoor: {LocationRightDoor},
}

// Successors возвращает упорядоченный список допустимых следующих зон.
// Возвращается копия, граф менять нельзя.
func Successors(from Location) []Location {
	next, ok := movementGraph[from]
	if !ok {
		return nil
	}
	out := make([]Location, len(next))
	copy(out, next)
	return out
}

// IsAbsorbing - зона, из которой нельзя уйти.
func IsAbsorbing(loc Location) bool {
	next := movementGraph[loc]
	return len(next) == 1 && next[0] == loc
}
