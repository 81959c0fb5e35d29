package hpx2710

import "pressurecode-go/drivers/presscal"

// FactoryCal is the calibration curve burned in at production test:
// 10.00 kPa to 100.00 kPa in 1 kPa steps against the codes observed on the
// reference rig. It lives in flash on MCU targets; nothing may mutate it.
var FactoryCal = presscal.Table{
	{Pressure: 10000, ADC: 1696},
	{Pressure: 11000, ADC: 1909},
	{Pressure: 12000, ADC: 2118},
	{Pressure: 13000, ADC: 2272},
	{Pressure: 14000, ADC: 2366},
	{Pressure: 15000, ADC: 2448},
	{Pressure: 16000, ADC: 2570},
	{Pressure: 17000, ADC: 2745},
	{Pressure: 18000, ADC: 2931},
	{Pressure: 19000, ADC: 3073},
	{Pressure: 20000, ADC: 3151},
	{Pressure: 21000, ADC: 3200},
	{Pressure: 22000, ADC: 3278},
	{Pressure: 23000, ADC: 3411},
	{Pressure: 24000, ADC: 3573},
	{Pressure: 25000, ADC: 3706},
	{Pressure: 26000, ADC: 3777},
	{Pressure: 27000, ADC: 3808},
	{Pressure: 28000, ADC: 3853},
	{Pressure: 29000, ADC: 3955},
	{Pressure: 30000, ADC: 4100},
	{Pressure: 31000, ADC: 4236},
	{Pressure: 32000, ADC: 4316},
	{Pressure: 33000, ADC: 4348},
	{Pressure: 34000, ADC: 4382},
	{Pressure: 35000, ADC: 4468},
	{Pressure: 36000, ADC: 4610},
	{Pressure: 37000, ADC: 4762},
	{Pressure: 38000, ADC: 4871},
	{Pressure: 39000, ADC: 4927},
	{Pressure: 40000, ADC: 4971},
	{Pressure: 41000, ADC: 5058},
	{Pressure: 42000, ADC: 5210},
	{Pressure: 43000, ADC: 5390},
	{Pressure: 44000, ADC: 5541},
	{Pressure: 45000, ADC: 5639},
	{Pressure: 46000, ADC: 5710},
	{Pressure: 47000, ADC: 5812},
	{Pressure: 48000, ADC: 5979},
	{Pressure: 49000, ADC: 6190},
	{Pressure: 50000, ADC: 6389},
	{Pressure: 51000, ADC: 6534},
	{Pressure: 52000, ADC: 6641},
	{Pressure: 53000, ADC: 6762},
	{Pressure: 54000, ADC: 6943},
	{Pressure: 55000, ADC: 7177},
	{Pressure: 56000, ADC: 7414},
	{Pressure: 57000, ADC: 7604},
	{Pressure: 58000, ADC: 7743},
	{Pressure: 59000, ADC: 7877},
	{Pressure: 60000, ADC: 8060},
	{Pressure: 61000, ADC: 8302},
	{Pressure: 62000, ADC: 8560},
	{Pressure: 63000, ADC: 8778},
	{Pressure: 64000, ADC: 8938},
	{Pressure: 65000, ADC: 9074},
	{Pressure: 66000, ADC: 9243},
	{Pressure: 67000, ADC: 9470},
	{Pressure: 68000, ADC: 9726},
	{Pressure: 69000, ADC: 9954},
	{Pressure: 70000, ADC: 10119},
	{Pressure: 71000, ADC: 10244},
	{Pressure: 72000, ADC: 10383},
	{Pressure: 73000, ADC: 10577},
	{Pressure: 74000, ADC: 10810},
	{Pressure: 75000, ADC: 11028},
	{Pressure: 76000, ADC: 11187},
	{Pressure: 77000, ADC: 11292},
	{Pressure: 78000, ADC: 11394},
	{Pressure: 79000, ADC: 11542},
	{Pressure: 80000, ADC: 11739},
	{Pressure: 81000, ADC: 11937},
	{Pressure: 82000, ADC: 12085},
	{Pressure: 83000, ADC: 12170},
	{Pressure: 84000, ADC: 12237},
	{Pressure: 85000, ADC: 12340},
	{Pressure: 86000, ADC: 12498},
	{Pressure: 87000, ADC: 12675},
	{Pressure: 88000, ADC: 12815},
	{Pressure: 89000, ADC: 12893},
	{Pressure: 90000, ADC: 12938},
	{Pressure: 91000, ADC: 13007},
	{Pressure: 92000, ADC: 13135},
	{Pressure: 93000, ADC: 13299},
	{Pressure: 94000, ADC: 13444},
	{Pressure: 95000, ADC: 13531},
	{Pressure: 96000, ADC: 13575},
	{Pressure: 97000, ADC: 13631},
	{Pressure: 98000, ADC: 13744},
	{Pressure: 99000, ADC: 13908},
	{Pressure: 100000, ADC: 14073},
}
