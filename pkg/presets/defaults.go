package presets

const (
	DefaultName     = "Default"
	ReversedName    = "Reversed"
	ThermometerName = "Thermometer"
	ClockName       = "Clock"
	TachometerName  = "Tachometer"
)

var systemNames = [...]string{DefaultName, ReversedName, ThermometerName, ClockName, TachometerName}

func setDefaults() {
	mu.Lock()
	defer mu.Unlock()
	Map[DefaultName] = `{"begin":210,"end":-30,"min":0,"max":100}`
	Map[ReversedName] = `{"begin":-30,"end":-150,"min":50,"max":150}`
	Map[ThermometerName] = `{"begin":120,"end":-120,"min":-40,"max":140,"alarms":[{"low":-1000,"high":20,"color":"0,0,1,.5"},{"low":21,"high":100,"color":"0,1,0,.5"},{"low":101,"high":200,"color":"1,0,0,.5"}]}`
	Map[ClockName] = `{"begin":90,"end":-270,"min":0,"max":60,"labels":[{"value":0,"text":""},{"value":5,"text":"1"},{"value":10,"text":"2"},{"value":15,"text":"3"},{"value":20,"text":"4"},{"value":25,"text":"5"},{"value":30,"text":"6"},{"value":35,"text":"7"},{"value":40,"text":"8"},{"value":45,"text":"9"},{"value":50,"text":"10"},{"value":55,"text":"11"},{"value":60,"text":"12"}],"needles":[{"width":3,"length":0.6,"color":".5,.5,.5"},{"width":2,"color":".5,.5,.5"},{"width":1}]}`
	Map[TachometerName] = `{"begin":225,"end":-45,"min":0,"max":80,"gradient":{"bands":8,"alpha":0.4,"mode":"Normal"}}`
}
