package searcher

// Values of a finished game from Max's perspective

const Win = 1.0   // Max wins
const Loss = -Win // Min wins
const Draw = 0.0
