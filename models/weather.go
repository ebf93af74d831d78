package models

// LiveResponse is the envelope the AMap weather API returns for a
// current-conditions query. Status metadata fields are strings in the
// upstream contract.
type LiveResponse struct {
	Status   string `json:"status"`
	Count    string `json:"count"`
	Info     string `json:"info"`
	Infocode string `json:"infocode"`
	Lives    []Live `json:"lives"`
}

// Live is one current-conditions report for a city. Every value is kept
// as a string: the API does not guarantee numeric JSON types for these
// fields, and parsing them would fail on placeholder values.
type Live struct {
	Province         string `json:"province"`
	City             string `json:"city"`
	Adcode           string `json:"adcode"`
	Weather          string `json:"weather"`
	Temperature      string `json:"temperature"`
	WindDirection    string `json:"winddirection"`
	WindPower        string `json:"windpower"`
	Humidity         string `json:"humidity"`
	ReportTime       string `json:"reporttime"`
	TemperatureFloat string `json:"temperature_float"`
	HumidityFloat    string `json:"humidity_float"`
}
